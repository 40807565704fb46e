package repositories

import (
	"errors"

	"aurum_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartItemExists   = errors.New("cart item already exists")
)

// CartRepository deliberately exposes no way to delete a cart.
type CartRepository interface {
	FindByUserID(userID string) (*models.Cart, error)
	FindItemByID(itemID string) (*models.CartItem, error)
	AddItem(item *models.CartItem) error
	UpdateItemQuantity(itemID string, quantity int) error
	DeleteItem(itemID string) error
	ClearCart(cartID string) error
}

type CartRepositoryImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &CartRepositoryImpl{db: db}
}

func (r *CartRepositoryImpl) FindByUserID(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items.JewelryItem").First(&cart, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepositoryImpl) FindItemByID(itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Preload("JewelryItem").First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// AddItem relies on the (cart_id, jewelry_item_id) unique index to reject
// duplicates, so concurrent adds of the same line cannot slip past a
// pre-check.
func (r *CartRepositoryImpl) AddItem(item *models.CartItem) error {
	return mapCartItemCreateErr(r.db.Create(item).Error)
}

func mapCartItemCreateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrCartItemExists
	}
	return err
}

func (r *CartRepositoryImpl) UpdateItemQuantity(itemID string, quantity int) error {
	result := r.db.Model(&models.CartItem{}).Where("id = ?", itemID).Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) DeleteItem(itemID string) error {
	result := r.db.Delete(&models.CartItem{}, "id = ?", itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart removes all lines; the cart row itself stays.
func (r *CartRepositoryImpl) ClearCart(cartID string) error {
	return r.db.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error
}
