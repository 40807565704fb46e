package services

import (
	"context"
	"errors"

	"aurum_backend/internal/logger"
	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
)

type OrderService interface {
	// Create turns the user's cart into an order: snapshot lines, total from
	// current prices, clear the cart. A confirmation email is attempted but a
	// delivery failure never fails the order.
	Create(ctx context.Context, user *models.User) (*dto.OrderResponse, error)
	Get(user *models.User, orderID string) (*dto.OrderResponse, error)
	List(user *models.User) ([]dto.OrderResponse, error)
	// Cancel is for the order's own customer, and only while pending.
	Cancel(user *models.User, orderID string) (*dto.OrderResponse, error)
	// UpdateStatus is the admin path; any valid status is accepted.
	UpdateStatus(orderID string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	emailSvc  EmailService
}

func NewOrderService(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, emailSvc EmailService) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		emailSvc:  emailSvc,
	}
}

func (s *orderService) Create(ctx context.Context, user *models.User) (*dto.OrderResponse, error) {
	cart, err := s.cartRepo.FindByUserID(user.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrEmptyCart()
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(cart.Items))
	for i := range cart.Items {
		line := &cart.Items[i]
		total = total.Add(line.JewelryItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			JewelryItemID: line.JewelryItemID,
			Quantity:      line.Quantity,
		})
	}

	order := &models.Order{
		UserID:      user.ID,
		TotalAmount: total,
		Status:      models.OrderStatusPending,
	}
	if err := s.orderRepo.CreateWithItems(order, items, cart.ID); err != nil {
		return nil, err
	}

	if err := s.emailSvc.SendOrderConfirmation(user, order, cart.Items); err != nil {
		logger.CtxWithError(ctx, "order confirmation email failed", err,
			"order_id", order.ID)
	}

	created, err := s.orderRepo.FindByID(order.ID)
	if err != nil {
		return nil, err
	}
	return buildOrderResponse(created), nil
}

func (s *orderService) Get(user *models.User, orderID string) (*dto.OrderResponse, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	// Customers get the same 404 for foreign orders as for missing ones.
	if user.Role != models.UserRoleOwner && order.UserID != user.ID {
		return nil, apperrors.ErrNotFound(repositories.ErrOrderNotFound)
	}
	return buildOrderResponse(order), nil
}

func (s *orderService) List(user *models.User) ([]dto.OrderResponse, error) {
	var (
		orders []models.Order
		err    error
	)
	if user.Role == models.UserRoleOwner {
		orders, err = s.orderRepo.FindAll()
	} else {
		orders, err = s.orderRepo.FindByUser(user.ID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, *buildOrderResponse(&orders[i]))
	}
	return responses, nil
}

func (s *orderService) Cancel(user *models.User, orderID string) (*dto.OrderResponse, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != user.ID {
		return nil, apperrors.ErrNotFound(repositories.ErrOrderNotFound)
	}
	if order.Status != models.OrderStatusPending {
		return nil, apperrors.ErrInvalidOperation("order",
			"Only pending orders can be cancelled")
	}

	if err := s.orderRepo.UpdateStatus(order.ID, models.OrderStatusCancelled); err != nil {
		return nil, err
	}
	order.Status = models.OrderStatusCancelled
	return buildOrderResponse(order), nil
}

func (s *orderService) UpdateStatus(orderID string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	status := models.OrderStatus(req.Status)
	if !models.IsValidOrderStatus(status) {
		return nil, apperrors.ErrInvalidStatus("order", "Unknown order status")
	}

	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return buildOrderResponse(order), nil
}

func (s *orderService) findOrder(orderID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return order, nil
}

func buildOrderResponse(order *models.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for i := range order.Items {
		line := &order.Items[i]
		items = append(items, dto.OrderItemResponse{
			ID:          line.ID,
			JewelryItem: *buildItemResponse(&line.JewelryItem),
			Quantity:    line.Quantity,
		})
	}
	return &dto.OrderResponse{
		ID:          order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      string(order.Status),
		Items:       items,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}
