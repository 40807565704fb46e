package models

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleOwner    UserRole = "owner"
)

type User struct {
	BaseModel
	Auth0Subject   string `gorm:"column:auth0_subject;uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	Name           string
	ProfilePicture string
	PhoneNumber    string
	DateOfBirth    *time.Time
	Bio            string
	// Role is assigned once at creation and never rewritten by the
	// authentication flow.
	Role      UserRole `gorm:"type:varchar(20);not null;default:'customer'"`
	IsPremium bool     `gorm:"default:false"`
	IsActive  bool     `gorm:"default:true"`

	// Relations
	Cart *Cart `gorm:"foreignKey:UserID"`
}
