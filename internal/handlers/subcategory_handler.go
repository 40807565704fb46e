package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SubcategoryHandler struct {
	*BaseHandler
	catalogService services.CatalogService
}

func NewSubcategoryHandler(base *BaseHandler, catalogService services.CatalogService) *SubcategoryHandler {
	return &SubcategoryHandler{
		BaseHandler:    base,
		catalogService: catalogService,
	}
}

func (h *SubcategoryHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/subcategories")
	{
		public.GET("", h.ListSubcategories)
		public.GET("/:subcategoryId", h.GetSubcategory)
		public.GET("/:subcategoryId/products", h.ListProducts)
	}

	admin := r.Group("/subcategories")
	admin.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleOwner))
	{
		admin.POST("", h.CreateSubcategory)
		admin.PUT("/:subcategoryId", h.UpdateSubcategory)
		admin.DELETE("/:subcategoryId", h.DeleteSubcategory)
	}
}

func (h *SubcategoryHandler) ListSubcategories(c *gin.Context) {
	subcategories, err := h.catalogService.ListSubcategories()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategories)
}

func (h *SubcategoryHandler) GetSubcategory(c *gin.Context) {
	subcategory, err := h.catalogService.GetSubcategory(c.Param("subcategoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) ListProducts(c *gin.Context) {
	items, err := h.catalogService.ListItemsBySubcategory(c.Param("subcategoryId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *SubcategoryHandler) CreateSubcategory(c *gin.Context) {
	var req dto.CreateSubcategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	subcategory, err := h.catalogService.CreateSubcategory(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subcategory)
}

func (h *SubcategoryHandler) UpdateSubcategory(c *gin.Context) {
	var req dto.UpdateSubcategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	subcategory, err := h.catalogService.UpdateSubcategory(c.Param("subcategoryId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, subcategory)
}

func (h *SubcategoryHandler) DeleteSubcategory(c *gin.Context) {
	if err := h.catalogService.DeleteSubcategory(c.Param("subcategoryId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
