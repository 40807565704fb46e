package services

import (
	"errors"

	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"
)

type CartService interface {
	GetCart(userID string) (*dto.CartResponse, error)
	AddItem(userID string, req *dto.AddCartItemRequest) (*dto.CartResponse, error)
	// UpdateQuantity with zero or negative quantity removes the line.
	UpdateQuantity(userID, cartItemID string, req *dto.UpdateQuantityRequest) (*dto.CartResponse, error)
	RemoveItem(userID, cartItemID string) (*dto.CartResponse, error)
	Clear(userID string) error
}

type cartService struct {
	cartRepo    repositories.CartRepository
	catalogRepo repositories.CatalogRepository
}

func NewCartService(cartRepo repositories.CartRepository, catalogRepo repositories.CatalogRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		catalogRepo: catalogRepo,
	}
}

func (s *cartService) GetCart(userID string) (*dto.CartResponse, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	return buildCartResponse(cart), nil
}

func (s *cartService) AddItem(userID string, req *dto.AddCartItemRequest) (*dto.CartResponse, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}

	if _, err := s.catalogRepo.FindItemByID(req.JewelryItemID); err != nil {
		return nil, mapCatalogErr(err)
	}

	item := &models.CartItem{
		CartID:        cart.ID,
		JewelryItemID: req.JewelryItemID,
		Quantity:      req.Quantity,
	}
	if err := s.cartRepo.AddItem(item); err != nil {
		if errors.Is(err, repositories.ErrCartItemExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, err
	}

	return s.GetCart(userID)
}

func (s *cartService) UpdateQuantity(userID, cartItemID string, req *dto.UpdateQuantityRequest) (*dto.CartResponse, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	if err := s.ownedCartItem(cart, cartItemID); err != nil {
		return nil, err
	}

	if *req.Quantity <= 0 {
		if err := s.cartRepo.DeleteItem(cartItemID); err != nil {
			return nil, mapCartErr(err)
		}
	} else {
		if err := s.cartRepo.UpdateItemQuantity(cartItemID, *req.Quantity); err != nil {
			return nil, mapCartErr(err)
		}
	}

	return s.GetCart(userID)
}

func (s *cartService) RemoveItem(userID, cartItemID string) (*dto.CartResponse, error) {
	cart, err := s.findCart(userID)
	if err != nil {
		return nil, err
	}
	if err := s.ownedCartItem(cart, cartItemID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.DeleteItem(cartItemID); err != nil {
		return nil, mapCartErr(err)
	}
	return s.GetCart(userID)
}

func (s *cartService) Clear(userID string) error {
	cart, err := s.findCart(userID)
	if err != nil {
		return err
	}
	return s.cartRepo.ClearCart(cart.ID)
}

func (s *cartService) findCart(userID string) (*models.Cart, error) {
	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCartNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}
	return cart, nil
}

// ownedCartItem rejects line ids belonging to another user's cart with the
// same 404 a missing line gets.
func (s *cartService) ownedCartItem(cart *models.Cart, cartItemID string) error {
	item, err := s.cartRepo.FindItemByID(cartItemID)
	if err != nil {
		return mapCartErr(err)
	}
	if item.CartID != cart.ID {
		return apperrors.ErrNotFound(repositories.ErrCartItemNotFound)
	}
	return nil
}

func mapCartErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCartNotFound),
		errors.Is(err, repositories.ErrCartItemNotFound):
		return apperrors.ErrNotFound(err)
	default:
		return err
	}
}

func buildCartResponse(cart *models.Cart) *dto.CartResponse {
	items := make([]dto.CartItemResponse, 0, len(cart.Items))
	for i := range cart.Items {
		line := &cart.Items[i]
		items = append(items, dto.CartItemResponse{
			ID:          line.ID,
			JewelryItem: *buildItemResponse(&line.JewelryItem),
			Quantity:    line.Quantity,
		})
	}
	return &dto.CartResponse{
		ID:    cart.ID,
		Items: items,
	}
}
