package models

import "github.com/shopspring/decimal"

type Category struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string
	Slug        string `gorm:"uniqueIndex;not null"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	JewelryItems  []JewelryItem `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Subcategory struct {
	BaseModel
	Name       string `gorm:"size:100;uniqueIndex;not null"`
	CategoryID string `gorm:"type:uuid;not null;index"`
	Slug       string `gorm:"uniqueIndex;not null"`

	Category     Category      `gorm:"foreignKey:CategoryID"`
	JewelryItems []JewelryItem `gorm:"foreignKey:SubcategoryID;constraint:OnDelete:CASCADE"`
}

type JewelryItem struct {
	BaseModel
	Name          string `gorm:"size:100;not null"`
	Description   string
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Weight        decimal.Decimal `gorm:"type:decimal(5,2)"`
	CategoryID    string          `gorm:"type:uuid;not null;index"`
	SubcategoryID string          `gorm:"type:uuid;not null;index"`
	ImageURL      string
	Slug          string `gorm:"uniqueIndex;not null"`
	IsActive      bool   `gorm:"default:true"`

	Category    Category    `gorm:"foreignKey:CategoryID"`
	Subcategory Subcategory `gorm:"foreignKey:SubcategoryID"`
	Reviews     []Review    `gorm:"foreignKey:JewelryItemID;constraint:OnDelete:CASCADE"`
}
