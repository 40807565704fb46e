package repositories

import (
	"errors"

	"aurum_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this item")
)

type ReviewRepository interface {
	FindAll() ([]models.Review, error)
	FindByID(id string) (*models.Review, error)
	FindByItem(itemID string) ([]models.Review, error)
	ExistsForUserAndItem(userID, itemID string) (bool, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id string) error
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) FindAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByItem(itemID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("jewelry_item_id = ?", itemID).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) ExistsForUserAndItem(userID, itemID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Review{}).
		Where("user_id = ? AND jewelry_item_id = ?", userID, itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	exists, err := r.ExistsForUserAndItem(review.UserID, review.JewelryItemID)
	if err != nil {
		return err
	}
	if exists {
		return ErrReviewAlreadyExists
	}
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Review{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
