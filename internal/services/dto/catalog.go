package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ======================
// Request DTOs
// ======================

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

type CreateSubcategoryRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	CategoryID string `json:"category_id" validate:"required,uuid"`
}

type UpdateSubcategoryRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
}

type CreateItemRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	Description   string          `json:"description" validate:"omitempty,max=5000"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Weight        decimal.Decimal `json:"weight"`
	CategoryID    string          `json:"category_id" validate:"required,uuid"`
	SubcategoryID string          `json:"subcategory_id" validate:"required,uuid"`
	ImageURL      string          `json:"image_url" validate:"omitempty,url"`
}

type UpdateItemRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=5000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	ImageURL    *string          `json:"image_url,omitempty" validate:"omitempty,url"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// ======================
// Response DTOs
// ======================

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
}

type SubcategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"category_id"`
	Slug       string `json:"slug"`
}

type ItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Weight        decimal.Decimal `json:"weight"`
	CategoryID    string          `json:"category_id"`
	SubcategoryID string          `json:"subcategory_id"`
	ImageURL      string          `json:"image_url,omitempty"`
	Slug          string          `json:"slug"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}
