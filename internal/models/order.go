package models

import "github.com/shopspring/decimal"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	BaseModel
	UserID      string          `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      OrderStatus     `gorm:"type:varchar(20);not null;default:'pending'"`

	User  User        `gorm:"foreignKey:UserID"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a snapshot of a cart line taken at order creation; later cart
// edits never touch it.
type OrderItem struct {
	BaseModel
	OrderID       string `gorm:"type:uuid;not null;index"`
	JewelryItemID string `gorm:"type:uuid;not null;index"`
	Quantity      int    `gorm:"not null;default:1"`

	JewelryItem JewelryItem `gorm:"foreignKey:JewelryItemID"`
}
