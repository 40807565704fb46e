package handlers

import (
	"net/http"

	"aurum_backend/internal/middleware"
	"aurum_backend/internal/models"
	"aurum_backend/internal/services"
	"aurum_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(r *gin.RouterGroup, authn *middleware.Authenticator) {
	orders := r.Group("/orders")
	orders.Use(authn.Authenticate())
	{
		orders.GET("", h.ListOrders)
		orders.POST("", authn.RequireRole(models.UserRoleCustomer), h.CreateOrder)
		orders.GET("/:orderId", h.GetOrder)
		orders.PUT("/:orderId/cancel", h.CancelOrder)
	}

	admin := r.Group("/admin/orders")
	admin.Use(authn.Authenticate(), authn.RequireRole(models.UserRoleOwner))
	{
		admin.GET("", h.ListOrders)
		admin.PUT("/:orderId/status", h.UpdateOrderStatus)
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orders, err := h.orderService.List(user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	order, err := h.orderService.Create(c.Request.Context(), user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	order, err := h.orderService.Get(user, c.Param("orderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)

	order, err := h.orderService.Cancel(user, c.Param("orderId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Param("orderId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
