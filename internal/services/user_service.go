package services

import (
	"errors"
	"time"

	"aurum_backend/internal/auth"
	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"
)

type UserService interface {
	// Provision maps verified token claims to a local user, creating one on
	// first sight. Role is derived from clientIP at creation and never
	// rewritten afterwards.
	Provision(claims *auth.Claims, clientIP string) (*models.User, error)

	GetProfile(userID string) (*dto.ProfileResponse, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
	ownerIPs auth.AllowList
}

func NewUserService(userRepo repositories.UserRepository, ownerIPs auth.AllowList) UserService {
	return &userService{
		userRepo: userRepo,
		ownerIPs: ownerIPs,
	}
}

func (s *userService) Provision(claims *auth.Claims, clientIP string) (*models.User, error) {
	// 1. Stable subject id match.
	user, err := s.userRepo.FindBySubject(claims.Subject)
	if err == nil {
		return s.refreshProfile(user, claims)
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	// 2. Email match: the provider rotated the subject id. refreshProfile
	// adopts the new one; the role assigned at first creation stays
	// untouched.
	user, err = s.userRepo.FindByEmail(claims.Email)
	if err == nil {
		return s.refreshProfile(user, claims)
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	// 3. First sight: create user + cart, role derived from the caller's IP.
	role := models.UserRoleCustomer
	if s.ownerIPs.Contains(clientIP) {
		role = models.UserRoleOwner
	}

	user = &models.User{
		Auth0Subject:   claims.Subject,
		Email:          claims.Email,
		Name:           claims.Name,
		ProfilePicture: claims.Picture,
		Role:           role,
		IsActive:       true,
	}
	if err := s.userRepo.CreateWithCart(user); err != nil {
		return nil, err
	}
	return user, nil
}

// refreshProfile syncs mutable profile fields from the token. Role is never
// one of them.
func (s *userService) refreshProfile(user *models.User, claims *auth.Claims) (*models.User, error) {
	updated := user.Auth0Subject != claims.Subject ||
		user.Email != claims.Email ||
		user.Name != claims.Name ||
		user.ProfilePicture != claims.Picture

	if !updated {
		return user, nil
	}

	user.Auth0Subject = claims.Subject
	user.Email = claims.Email
	user.Name = claims.Name
	user.ProfilePicture = claims.Picture

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetProfile(userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return buildProfileResponse(user), nil
}

func (s *userService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid date format. Use YYYY-MM-DD")
		}
		user.DateOfBirth = &dob
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return buildProfileResponse(user), nil
}

func buildProfileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
		PhoneNumber:    user.PhoneNumber,
		DateOfBirth:    user.DateOfBirth,
		Bio:            user.Bio,
		Role:           string(user.Role),
		IsPremium:      user.IsPremium,
		DateJoined:     user.CreatedAt,
	}
}
