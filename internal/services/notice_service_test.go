package services

import (
	"testing"

	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotice_CreateAndUpdate(t *testing.T) {
	svc := NewNoticeService(newFakeNoticeRepo())

	notice, err := svc.Create(&dto.CreateNoticeRequest{Message: "Spring sale", NoticeType: "offer"})
	require.NoError(t, err)
	assert.Equal(t, "offer", notice.NoticeType)

	// "price change" is a legal type, space included.
	newType := "price change"
	updated, err := svc.Update(notice.ID, &dto.UpdateNoticeRequest{NoticeType: &newType})
	require.NoError(t, err)
	assert.Equal(t, "price change", updated.NoticeType)
}

func TestNotice_UnknownTypeRejected(t *testing.T) {
	svc := NewNoticeService(newFakeNoticeRepo())

	_, err := svc.Create(&dto.CreateNoticeRequest{Message: "Hi", NoticeType: "announcement"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestNotice_DeleteMissingIs404(t *testing.T) {
	svc := NewNoticeService(newFakeNoticeRepo())

	err := svc.Delete("00000000-0000-0000-0000-000000000000")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
