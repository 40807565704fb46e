package models

// Cart is created together with its user and is never deleted; no repository
// or handler exposes a delete path for it.
type Cart struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
}

type CartItem struct {
	BaseModel
	CartID        string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item"`
	JewelryItemID string `gorm:"type:uuid;not null;uniqueIndex:idx_cart_item"`
	Quantity      int    `gorm:"not null;default:1;check:quantity >= 1"`

	JewelryItem JewelryItem `gorm:"foreignKey:JewelryItemID"`
}
