package dto

import "time"

type CreateReviewRequest struct {
	JewelryItemID string `json:"jewelry_item_id" validate:"required,uuid"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	JewelryItemID string    `json:"jewelry_item_id"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
