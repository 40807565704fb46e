package repositories

import (
	"errors"

	"aurum_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNoticeNotFound = errors.New("notice not found")

type NoticeRepository interface {
	FindAll() ([]models.Notice, error)
	FindByID(id string) (*models.Notice, error)
	Create(notice *models.Notice) error
	Update(notice *models.Notice) error
	Delete(id string) error
}

type NoticeRepositoryImpl struct {
	db *gorm.DB
}

func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &NoticeRepositoryImpl{db: db}
}

func (r *NoticeRepositoryImpl) FindAll() ([]models.Notice, error) {
	var notices []models.Notice
	if err := r.db.Order("created_at DESC").Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *NoticeRepositoryImpl) FindByID(id string) (*models.Notice, error) {
	var notice models.Notice
	err := r.db.First(&notice, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoticeNotFound
		}
		return nil, err
	}
	return &notice, nil
}

func (r *NoticeRepositoryImpl) Create(notice *models.Notice) error {
	return r.db.Create(notice).Error
}

func (r *NoticeRepositoryImpl) Update(notice *models.Notice) error {
	return r.db.Save(notice).Error
}

func (r *NoticeRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Notice{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNoticeNotFound
	}
	return nil
}
