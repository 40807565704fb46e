package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	*BaseHandler
	cartService services.CartService
}

func NewCartHandler(base *BaseHandler, cartService services.CartService) *CartHandler {
	return &CartHandler{
		BaseHandler: base,
		cartService: cartService,
	}
}

// The cart surface is customer-only; owners have no cart use case.
func (h *CartHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	cart := r.Group("/cart")
	cart.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleCustomer))
	{
		cart.GET("", h.GetCart)
		cart.DELETE("/clear", h.ClearCart)
	}

	items := r.Group("/cart-items")
	items.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleCustomer))
	{
		items.POST("", h.AddItem)
		items.PATCH("/:cartItemId/quantity", h.UpdateQuantity)
		items.DELETE("/:cartItemId", h.RemoveItem)
	}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	cart, err := h.cartService.GetCart(user.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.cartService.Clear(user.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.AddCartItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cart, err := h.cartService.AddItem(user.ID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.UpdateQuantityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cart, err := h.cartService.UpdateQuantity(user.ID, c.Param("cartItemId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	cart, err := h.cartService.RemoveItem(user.ID, c.Param("cartItemId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}
