package dto

type AddCartItemRequest struct {
	JewelryItemID string `json:"jewelry_item_id" validate:"required,uuid"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	// Zero or negative removes the line.
	Quantity *int `json:"quantity" validate:"required"`
}

type CartItemResponse struct {
	ID          string       `json:"id"`
	JewelryItem ItemResponse `json:"jewelry_item"`
	Quantity    int          `json:"quantity"`
}

type CartResponse struct {
	ID    string             `json:"id"`
	Items []CartItemResponse `json:"items"`
}
