package repositories

import (
	"errors"

	"aurum_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	FindByID(id string) (*models.Order, error)
	FindAll() ([]models.Order, error)
	FindByUser(userID string) ([]models.Order, error)
	// CreateWithItems persists the order with its snapshot lines and clears
	// the cart, all in one transaction.
	CreateWithItems(order *models.Order, items []models.OrderItem, cartID string) error
	UpdateStatus(orderID string, status models.OrderStatus) error
}

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) FindByID(id string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items.JewelryItem").Preload("User").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items.JewelryItem").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) FindByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items.JewelryItem").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) CreateWithItems(order *models.Order, items []models.OrderItem, cartID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		return tx.Delete(&models.CartItem{}, "cart_id = ?", cartID).Error
	})
}

func (r *OrderRepositoryImpl) UpdateStatus(orderID string, status models.OrderStatus) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", orderID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
