package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	*BaseHandler
	emailService services.EmailService
}

func NewEmailHandler(base *BaseHandler, emailService services.EmailService) *EmailHandler {
	return &EmailHandler{
		BaseHandler:  base,
		emailService: emailService,
	}
}

func (h *EmailHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	r.POST("/send-email", authn.Authenticate(), h.SendContactForm)
}

func (h *EmailHandler) SendContactForm(c *gin.Context) {
	var req dto.ContactFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.emailService.SendContactForm(&req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}
