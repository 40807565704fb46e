package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	*BaseHandler
	catalogService services.CatalogService
	reviewService  services.ReviewService
}

func NewProductHandler(base *BaseHandler, catalogService services.CatalogService, reviewService services.ReviewService) *ProductHandler {
	return &ProductHandler{
		BaseHandler:    base,
		catalogService: catalogService,
		reviewService:  reviewService,
	}
}

func (h *ProductHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/products")
	{
		public.GET("", h.ListProducts)
		public.GET("/:productId", h.GetProduct)
		public.GET("/:productId/reviews", h.ListProductReviews)
	}

	admin := r.Group("/products")
	admin.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleOwner))
	{
		admin.POST("", h.CreateProduct)
		admin.PUT("/:productId", h.UpdateProduct)
		admin.DELETE("/:productId", h.DeleteProduct)
	}
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	items, err := h.catalogService.ListItems()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	item, err := h.catalogService.GetItem(c.Param("productId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProductHandler) ListProductReviews(c *gin.Context) {
	reviews, err := h.reviewService.ListByItem(c.Param("productId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.catalogService.CreateItem(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req dto.UpdateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.catalogService.UpdateItem(c.Param("productId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteItem(c.Param("productId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
