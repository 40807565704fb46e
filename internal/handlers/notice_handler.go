package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type NoticeHandler struct {
	*BaseHandler
	noticeService services.NoticeService
}

func NewNoticeHandler(base *BaseHandler, noticeService services.NoticeService) *NoticeHandler {
	return &NoticeHandler{
		BaseHandler:   base,
		noticeService: noticeService,
	}
}

func (h *NoticeHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/notices")
	{
		public.GET("", h.ListNotices)
		public.GET("/:noticeId", h.GetNotice)
	}

	admin := r.Group("/notices")
	admin.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleOwner))
	{
		admin.POST("", h.CreateNotice)
		admin.PUT("/:noticeId", h.UpdateNotice)
		admin.DELETE("/:noticeId", h.DeleteNotice)
	}
}

func (h *NoticeHandler) ListNotices(c *gin.Context) {
	notices, err := h.noticeService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

func (h *NoticeHandler) GetNotice(c *gin.Context) {
	notice, err := h.noticeService.Get(c.Param("noticeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notice, err := h.noticeService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, notice)
}

func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	var req dto.UpdateNoticeRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	notice, err := h.noticeService.Update(c.Param("noticeId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	if err := h.noticeService.Delete(c.Param("noticeId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
