package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewCategoryHandler(base *BaseHandler, catalogService services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/categories")
	{
		public.GET("", h.ListCategories)
		public.GET("/:categoryId", h.GetCategory)
		public.GET("/:categoryId/subcategories", h.ListSubcategories)
	}

	admin := r.Group("/categories")
	admin.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleOwner))
	{
		admin.POST("", h.CreateCategory)
		admin.PUT("/:categoryId", h.UpdateCategory)
		admin.DELETE("/:categoryId", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.GetCategory(c.Param("categoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.catalogService.ListSubcategoriesByCategory(c.Param("categoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateCategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Param("categoryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Param("categoryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
