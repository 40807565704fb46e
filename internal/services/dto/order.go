package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

type OrderItemResponse struct {
	ID          string       `json:"id"`
	JewelryItem ItemResponse `json:"jewelry_item"`
	Quantity    int          `json:"quantity"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
	Status      string              `json:"status"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}
