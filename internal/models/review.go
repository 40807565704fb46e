package models

type Review struct {
	BaseModel
	UserID        string `gorm:"type:uuid;not null;uniqueIndex:idx_user_item_review"`
	JewelryItemID string `gorm:"type:uuid;not null;uniqueIndex:idx_user_item_review"`
	Rating        int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment       string

	User        User        `gorm:"foreignKey:UserID"`
	JewelryItem JewelryItem `gorm:"foreignKey:JewelryItemID"`
}
