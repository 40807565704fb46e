package services

import (
	"testing"

	"aurum_backend/internal/auth"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() *auth.Claims {
	return &auth.Claims{
		Subject: "auth0|abc",
		Email:   "customer@example.com",
		Name:    "Jane Customer",
		Picture: "https://cdn.example.com/jane.png",
	}
}

func TestProvision_FirstSightCreatesUserAndCart(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, auth.NewAllowList(nil))

	user, err := svc.Provision(testClaims(), "198.51.100.7")
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleCustomer, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, 1, repo.cartsCreated)

	// Second call matches by subject; no second cart.
	again, err := svc.Provision(testClaims(), "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, 1, repo.cartsCreated)
}

func TestProvision_OwnerIPGetsOwnerRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, auth.NewAllowList([]string{"203.0.113.10"}))

	user, err := svc.Provision(testClaims(), "203.0.113.10")
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleOwner, user.Role)
}

func TestProvision_EmailRematchKeepsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, auth.NewAllowList([]string{"203.0.113.10"}))

	// Created as owner from the allow-listed address.
	first, err := svc.Provision(testClaims(), "203.0.113.10")
	require.NoError(t, err)
	require.Equal(t, models.UserRoleOwner, first.Role)

	// Provider rotates the subject id. Same email, ordinary address: the
	// account adopts the new subject but the role stays owner.
	rotated := testClaims()
	rotated.Subject = "auth0|rotated"
	second, err := svc.Provision(rotated, "198.51.100.7")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "auth0|rotated", second.Auth0Subject)
	assert.Equal(t, models.UserRoleOwner, second.Role)
	assert.Equal(t, 1, repo.cartsCreated)

	// The adopted subject must be persisted, not just returned: the next
	// request looks the user up by it.
	stored, err := repo.FindBySubject("auth0|rotated")
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, models.UserRoleOwner, stored.Role)
}

func TestProvision_SyncsProfileFields(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, auth.NewAllowList(nil))

	_, err := svc.Provision(testClaims(), "198.51.100.7")
	require.NoError(t, err)

	updated := testClaims()
	updated.Name = "Jane Renamed"
	user, err := svc.Provision(updated, "198.51.100.7")
	require.NoError(t, err)
	assert.Equal(t, "Jane Renamed", user.Name)

	stored, err := repo.FindBySubject(updated.Subject)
	require.NoError(t, err)
	assert.Equal(t, "Jane Renamed", stored.Name)
}

func TestUpdateProfile_InvalidDateRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, auth.NewAllowList(nil))

	user, err := svc.Provision(testClaims(), "198.51.100.7")
	require.NoError(t, err)

	bad := "31-12-1990"
	_, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{DateOfBirth: &bad})
	require.Error(t, err)

	good := "1990-12-31"
	profile, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{DateOfBirth: &good})
	require.NoError(t, err)
	require.NotNil(t, profile.DateOfBirth)
	assert.Equal(t, 1990, profile.DateOfBirth.Year())
}
