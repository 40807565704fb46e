package services

import (
	"testing"

	"aurum_backend/internal/models"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReviewFixture(t *testing.T) (*fakeReviewRepo, *fakeCatalogRepo, string) {
	t.Helper()

	catalog := newFakeCatalogRepo()
	_, subcategoryID := seedCatalog(t, catalog)

	item := &models.JewelryItem{
		Name:          "Gold Ring",
		Price:         decimal.RequireFromString("99.99"),
		SubcategoryID: subcategoryID,
		Slug:          "gold-ring",
	}
	require.NoError(t, catalog.CreateItem(item))

	return newFakeReviewRepo(), catalog, item.ID
}

func TestCreateReview_OnePerUserPerItem(t *testing.T) {
	reviews, catalog, itemID := seedReviewFixture(t)
	svc := NewReviewService(reviews, catalog)

	_, err := svc.Create("user-1", &dto.CreateReviewRequest{JewelryItemID: itemID, Rating: 5, Comment: "Lovely"})
	require.NoError(t, err)

	_, err = svc.Create("user-1", &dto.CreateReviewRequest{JewelryItemID: itemID, Rating: 1, Comment: "Changed my mind"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	// A different user still can.
	_, err = svc.Create("user-2", &dto.CreateReviewRequest{JewelryItemID: itemID, Rating: 4})
	require.NoError(t, err)
}

func TestCreateReview_UnknownItem(t *testing.T) {
	reviews, catalog, _ := seedReviewFixture(t)
	svc := NewReviewService(reviews, catalog)

	_, err := svc.Create("user-1", &dto.CreateReviewRequest{
		JewelryItemID: "00000000-0000-0000-0000-000000000000",
		Rating:        5,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestUpdateReview_AuthorOnly(t *testing.T) {
	reviews, catalog, itemID := seedReviewFixture(t)
	svc := NewReviewService(reviews, catalog)

	created, err := svc.Create("user-1", &dto.CreateReviewRequest{JewelryItemID: itemID, Rating: 3})
	require.NoError(t, err)

	author := &models.User{Role: models.UserRoleCustomer}
	author.ID = "user-1"
	stranger := &models.User{Role: models.UserRoleCustomer}
	stranger.ID = "user-2"

	four := 4
	_, err = svc.Update(stranger, created.ID, &dto.UpdateReviewRequest{Rating: &four})
	require.Error(t, err)

	updated, err := svc.Update(author, created.ID, &dto.UpdateReviewRequest{Rating: &four})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Rating)
}

func TestDeleteReview_AuthorOrOwner(t *testing.T) {
	reviews, catalog, itemID := seedReviewFixture(t)
	svc := NewReviewService(reviews, catalog)

	created, err := svc.Create("user-1", &dto.CreateReviewRequest{JewelryItemID: itemID, Rating: 3})
	require.NoError(t, err)

	stranger := &models.User{Role: models.UserRoleCustomer}
	stranger.ID = "user-2"
	require.Error(t, svc.Delete(stranger, created.ID))

	admin := &models.User{Role: models.UserRoleOwner}
	admin.ID = "admin-1"
	require.NoError(t, svc.Delete(admin, created.ID))
}
