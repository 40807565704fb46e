package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewProfileHandler(base *BaseHandler, userService services.UserService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	profile := r.Group("/profile")
	profile.Use(authn.Authenticate())
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}

	role := r.Group("/role")
	role.Use(authn.Authenticate())
	{
		role.GET("", h.GetRole)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	profile, err := h.userService.GetProfile(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.userService.UpdateProfile(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetRole is what the frontend polls to decide which UI to render.
func (h *ProfileHandler) GetRole(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.RoleResponse{Role: string(user.Role)})
}
