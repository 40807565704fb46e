package dto

import "time"

// ======================
// Request DTOs
// ======================

type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=255"`
	ProfilePicture *string `json:"profile_picture,omitempty" validate:"omitempty,url"`
	PhoneNumber    *string `json:"phone_number,omitempty" validate:"omitempty,max=20"`
	DateOfBirth    *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Bio            *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

// ======================
// Response DTOs
// ======================

type ProfileResponse struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	PhoneNumber    string     `json:"phone_number,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Bio            string     `json:"bio,omitempty"`
	Role           string     `json:"role"`
	IsPremium      bool       `json:"is_premium"`
	DateJoined     time.Time  `json:"date_joined"`
}

type RoleResponse struct {
	Role string `json:"role"`
}
