package services

import (
	"errors"

	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"
)

type ReviewService interface {
	List() ([]dto.ReviewResponse, error)
	ListByItem(itemID string) ([]dto.ReviewResponse, error)
	Get(reviewID string) (*dto.ReviewResponse, error)
	// Create enforces one review per user per item.
	Create(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	// Update is author-only; Delete allows the author or an owner.
	Update(user *models.User, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	Delete(user *models.User, reviewID string) error
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	catalogRepo repositories.CatalogRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, catalogRepo repositories.CatalogRepository) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *reviewService) List() ([]dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviews), nil
}

func (s *reviewService) ListByItem(itemID string) ([]dto.ReviewResponse, error) {
	if _, err := s.catalogRepo.FindItemByID(itemID); err != nil {
		return nil, mapCatalogErr(err)
	}

	reviews, err := s.reviewRepo.FindByItem(itemID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponses(reviews), nil
}

func (s *reviewService) Get(reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	return buildReviewResponse(review), nil
}

func (s *reviewService) Create(userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if _, err := s.catalogRepo.FindItemByID(req.JewelryItemID); err != nil {
		return nil, mapCatalogErr(err)
	}

	review := &models.Review{
		UserID:        userID,
		JewelryItemID: req.JewelryItemID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, err
	}
	return buildReviewResponse(review), nil
}

func (s *reviewService) Update(user *models.User, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.findReview(reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != user.ID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return buildReviewResponse(review), nil
}

func (s *reviewService) Delete(user *models.User, reviewID string) error {
	review, err := s.findReview(reviewID)
	if err != nil {
		return err
	}
	if review.UserID != user.ID && user.Role != models.UserRoleOwner {
		return apperrors.ErrInsufficientPermissions
	}
	return s.reviewRepo.Delete(review.ID)
}

func (s *reviewService) findReview(reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return review, nil
}

func buildReviewResponse(review *models.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:            review.ID,
		UserID:        review.UserID,
		JewelryItemID: review.JewelryItemID,
		Rating:        review.Rating,
		Comment:       review.Comment,
		CreatedAt:     review.CreatedAt,
	}
}

func buildReviewResponses(reviews []models.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, *buildReviewResponse(&reviews[i]))
	}
	return responses
}
