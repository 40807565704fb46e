package dto

import "time"

type CreateNoticeRequest struct {
	Message    string `json:"message" validate:"required,max=5000"`
	NoticeType string `json:"notice_type" validate:"required,notice_type"`
}

type UpdateNoticeRequest struct {
	Message    *string `json:"message,omitempty" validate:"omitempty,max=5000"`
	NoticeType *string `json:"notice_type,omitempty" validate:"omitempty,notice_type"`
}

type NoticeResponse struct {
	ID         string    `json:"id"`
	Message    string    `json:"message"`
	NoticeType string    `json:"notice_type"`
	CreatedAt  time.Time `json:"created_at"`
}
