package services

import (
	"errors"

	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"
)

type NoticeService interface {
	List() ([]dto.NoticeResponse, error)
	Get(id string) (*dto.NoticeResponse, error)
	Create(req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	Update(id string, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error)
	Delete(id string) error
}

type noticeService struct {
	noticeRepo repositories.NoticeRepository
}

func NewNoticeService(noticeRepo repositories.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) List() ([]dto.NoticeResponse, error) {
	notices, err := s.noticeRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NoticeResponse, 0, len(notices))
	for i := range notices {
		responses = append(responses, *buildNoticeResponse(&notices[i]))
	}
	return responses, nil
}

func (s *noticeService) Get(id string) (*dto.NoticeResponse, error) {
	notice, err := s.findNotice(id)
	if err != nil {
		return nil, err
	}
	return buildNoticeResponse(notice), nil
}

func (s *noticeService) Create(req *dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	noticeType := models.NoticeType(req.NoticeType)
	if !models.IsValidNoticeType(noticeType) {
		return nil, apperrors.ErrInvalidStatus("notice", "Unknown notice type")
	}

	notice := &models.Notice{
		Message:    req.Message,
		NoticeType: noticeType,
	}
	if err := s.noticeRepo.Create(notice); err != nil {
		return nil, err
	}
	return buildNoticeResponse(notice), nil
}

func (s *noticeService) Update(id string, req *dto.UpdateNoticeRequest) (*dto.NoticeResponse, error) {
	notice, err := s.findNotice(id)
	if err != nil {
		return nil, err
	}

	if req.Message != nil {
		notice.Message = *req.Message
	}
	if req.NoticeType != nil {
		noticeType := models.NoticeType(*req.NoticeType)
		if !models.IsValidNoticeType(noticeType) {
			return nil, apperrors.ErrInvalidStatus("notice", "Unknown notice type")
		}
		notice.NoticeType = noticeType
	}

	if err := s.noticeRepo.Update(notice); err != nil {
		return nil, err
	}
	return buildNoticeResponse(notice), nil
}

func (s *noticeService) Delete(id string) error {
	if err := s.noticeRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}
	return nil
}

func (s *noticeService) findNotice(id string) (*models.Notice, error) {
	notice, err := s.noticeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNoticeNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return notice, nil
}

func buildNoticeResponse(notice *models.Notice) *dto.NoticeResponse {
	return &dto.NoticeResponse{
		ID:         notice.ID,
		Message:    notice.Message,
		NoticeType: string(notice.NoticeType),
		CreatedAt:  notice.CreatedAt,
	}
}
