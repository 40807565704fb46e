package services

import (
	"context"
	"errors"
	"testing"

	"aurum_backend/internal/models"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	catalog *fakeCatalogRepo
	carts   *fakeCartRepo
	orders  *fakeOrderRepo
	email   *fakeEmailService
	svc     OrderService
	user    *models.User
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	catalog := newFakeCatalogRepo()
	_, subcategoryID := seedCatalog(t, catalog)

	ring := &models.JewelryItem{Name: "Gold Ring", Price: decimal.RequireFromString("10.00"), SubcategoryID: subcategoryID, Slug: "gold-ring"}
	require.NoError(t, catalog.CreateItem(ring))
	chain := &models.JewelryItem{Name: "Silver Chain", Price: decimal.RequireFromString("5.00"), SubcategoryID: subcategoryID, Slug: "silver-chain"}
	require.NoError(t, catalog.CreateItem(chain))

	carts := newFakeCartRepo(catalog)
	cart := carts.addCart("user-1")
	require.NoError(t, carts.AddItem(&models.CartItem{CartID: cart.ID, JewelryItemID: ring.ID, Quantity: 2}))
	require.NoError(t, carts.AddItem(&models.CartItem{CartID: cart.ID, JewelryItemID: chain.ID, Quantity: 1}))

	orders := newFakeOrderRepo(carts)
	email := &fakeEmailService{}

	user := &models.User{Role: models.UserRoleCustomer, Email: "customer@example.com"}
	user.ID = "user-1"

	return &orderFixture{
		catalog: catalog,
		carts:   carts,
		orders:  orders,
		email:   email,
		svc:     NewOrderService(orders, carts, email),
		user:    user,
	}
}

func TestCreateOrder_TotalSnapshotAndCartCleared(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	// 2 x 10.00 + 1 x 5.00
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("25.00")),
		"got total %s", order.TotalAmount)
	assert.Equal(t, string(models.OrderStatusPending), order.Status)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 1, f.email.orderConfirmations)

	cart, err := f.carts.FindByUserID(f.user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCreateOrder_EmptyCartRejected(t *testing.T) {
	f := newOrderFixture(t)
	require.NoError(t, f.carts.ClearCart(f.carts.carts["user-1"].ID))

	_, err := f.svc.Create(context.Background(), f.user)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeEmptyCart, appErr.Code)
	assert.Equal(t, 0, f.email.orderConfirmations)
}

func TestCreateOrder_EmailFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.email.failWith = errors.New("smtp down")

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, f.email.orderConfirmations)
}

func TestCancelOrder_PendingOnly(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	cancelled, err := f.svc.Cancel(f.user, order.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.OrderStatusCancelled), cancelled.Status)

	// Already cancelled: no second cancel.
	_, err = f.svc.Cancel(f.user, order.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestCancelOrder_ForeignOrderIs404(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	other := &models.User{Role: models.UserRoleCustomer}
	other.ID = "user-2"

	_, err = f.svc.Cancel(other, order.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetOrder_Visibility(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	// The owning customer sees it.
	_, err = f.svc.Get(f.user, order.ID)
	require.NoError(t, err)

	// A different customer gets 404, not 403.
	other := &models.User{Role: models.UserRoleCustomer}
	other.ID = "user-2"
	_, err = f.svc.Get(other, order.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)

	// An owner sees everything.
	admin := &models.User{Role: models.UserRoleOwner}
	admin.ID = "admin-1"
	_, err = f.svc.Get(admin, order.ID)
	require.NoError(t, err)
}

func TestListOrders_OwnerSeesAll(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	admin := &models.User{Role: models.UserRoleOwner}
	admin.ID = "admin-1"

	all, err := f.svc.List(admin)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	own, err := f.svc.List(f.user)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	other := &models.User{Role: models.UserRoleCustomer}
	other.ID = "user-2"
	none, err := f.svc.List(other)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdateStatus_Validation(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(context.Background(), f.user)
	require.NoError(t, err)

	updated, err := f.svc.UpdateStatus(order.ID, &dto.UpdateOrderStatusRequest{Status: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", updated.Status)

	_, err = f.svc.UpdateStatus(order.ID, &dto.UpdateOrderStatusRequest{Status: "shipped"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}
