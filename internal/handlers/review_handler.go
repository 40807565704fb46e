package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	public := r.Group("/reviews")
	{
		public.GET("", h.ListReviews)
		public.GET("/:reviewId", h.GetReview)
	}

	protected := r.Group("/reviews")
	protected.Use(authn.Authenticate())
	{
		protected.POST("", h.CreateReview)
		protected.PUT("/:reviewId", h.UpdateReview)
		protected.DELETE("/:reviewId", h.DeleteReview)
	}
}

func (h *ReviewHandler) ListReviews(c *gin.Context) {
	var (
		reviews interface{}
		err     error
	)
	if productID := c.Query("product_id"); productID != "" {
		reviews, err = h.reviewService.ListByItem(productID)
	} else {
		reviews, err = h.reviewService.List()
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	review, err := h.reviewService.Get(c.Param("reviewId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Create(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.UpdateReviewRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	review, err := h.reviewService.Update(user, c.Param("reviewId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.reviewService.Delete(user, c.Param("reviewId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
