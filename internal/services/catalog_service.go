package services

import (
	"errors"
	"fmt"

	"aurum_backend/internal/models"
	"aurum_backend/internal/repositories"
	"aurum_backend/internal/services/dto"
	"aurum_backend/pkg/apperrors"

	"github.com/gosimple/slug"
)

type CatalogService interface {
	// Categories
	ListCategories() ([]dto.CategoryResponse, error)
	GetCategory(id string) (*dto.CategoryResponse, error)
	CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(id string) error
	ListSubcategoriesByCategory(categoryID string) ([]dto.SubcategoryResponse, error)

	// Subcategories
	ListSubcategories() ([]dto.SubcategoryResponse, error)
	GetSubcategory(id string) (*dto.SubcategoryResponse, error)
	CreateSubcategory(req *dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error)
	UpdateSubcategory(id string, req *dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error)
	DeleteSubcategory(id string) error
	ListItemsBySubcategory(subcategoryID string) ([]dto.ItemResponse, error)

	// Items
	ListItems() ([]dto.ItemResponse, error)
	GetItem(id string) (*dto.ItemResponse, error)
	CreateItem(req *dto.CreateItemRequest) (*dto.ItemResponse, error)
	UpdateItem(id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error)
	DeleteItem(id string) error
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &catalogService{catalogRepo: catalogRepo}
}

// ---------------- Categories ----------------

func (s *catalogService) ListCategories() ([]dto.CategoryResponse, error) {
	categories, err := s.catalogRepo.FindCategories()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, *buildCategoryResponse(&categories[i]))
	}
	return responses, nil
}

func (s *catalogService) GetCategory(id string) (*dto.CategoryResponse, error) {
	category, err := s.catalogRepo.FindCategoryByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}
	return buildCategoryResponse(category), nil
}

func (s *catalogService) CreateCategory(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	categorySlug := slug.Make(req.Name)
	exists, err := s.catalogRepo.CategorySlugExists(categorySlug)
	if err != nil {
		return nil, err
	}
	if exists {
		// Categories reject slug collisions outright; only items de-dup.
		return nil, apperrors.ValidationError(
			fmt.Sprintf("A category with slug '%s' already exists", categorySlug))
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
		Slug:        categorySlug,
	}
	if err := s.catalogRepo.CreateCategory(category); err != nil {
		return nil, err
	}
	return buildCategoryResponse(category), nil
}

func (s *catalogService) UpdateCategory(id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.catalogRepo.FindCategoryByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}

	if err := s.catalogRepo.UpdateCategory(category); err != nil {
		return nil, err
	}
	return buildCategoryResponse(category), nil
}

func (s *catalogService) DeleteCategory(id string) error {
	if err := s.catalogRepo.DeleteCategory(id); err != nil {
		return mapCatalogErr(err)
	}
	return nil
}

func (s *catalogService) ListSubcategoriesByCategory(categoryID string) ([]dto.SubcategoryResponse, error) {
	if _, err := s.catalogRepo.FindCategoryByID(categoryID); err != nil {
		return nil, mapCatalogErr(err)
	}

	subcategories, err := s.catalogRepo.FindSubcategoriesByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		responses = append(responses, *buildSubcategoryResponse(&subcategories[i]))
	}
	return responses, nil
}

// ---------------- Subcategories ----------------

func (s *catalogService) ListSubcategories() ([]dto.SubcategoryResponse, error) {
	subcategories, err := s.catalogRepo.FindSubcategories()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.SubcategoryResponse, 0, len(subcategories))
	for i := range subcategories {
		responses = append(responses, *buildSubcategoryResponse(&subcategories[i]))
	}
	return responses, nil
}

func (s *catalogService) GetSubcategory(id string) (*dto.SubcategoryResponse, error) {
	subcategory, err := s.catalogRepo.FindSubcategoryByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}
	return buildSubcategoryResponse(subcategory), nil
}

func (s *catalogService) CreateSubcategory(req *dto.CreateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	if _, err := s.catalogRepo.FindCategoryByID(req.CategoryID); err != nil {
		return nil, mapCatalogErr(err)
	}

	subcategorySlug := slug.Make(req.Name)
	exists, err := s.catalogRepo.SubcategorySlugExists(subcategorySlug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ValidationError(
			fmt.Sprintf("A subcategory with slug '%s' already exists", subcategorySlug))
	}

	subcategory := &models.Subcategory{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Slug:       subcategorySlug,
	}
	if err := s.catalogRepo.CreateSubcategory(subcategory); err != nil {
		return nil, err
	}
	return buildSubcategoryResponse(subcategory), nil
}

func (s *catalogService) UpdateSubcategory(id string, req *dto.UpdateSubcategoryRequest) (*dto.SubcategoryResponse, error) {
	subcategory, err := s.catalogRepo.FindSubcategoryByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}

	if req.Name != nil {
		subcategory.Name = *req.Name
	}
	if req.CategoryID != nil {
		if _, err := s.catalogRepo.FindCategoryByID(*req.CategoryID); err != nil {
			return nil, mapCatalogErr(err)
		}
		subcategory.CategoryID = *req.CategoryID
	}

	if err := s.catalogRepo.UpdateSubcategory(subcategory); err != nil {
		return nil, err
	}
	return buildSubcategoryResponse(subcategory), nil
}

func (s *catalogService) DeleteSubcategory(id string) error {
	if err := s.catalogRepo.DeleteSubcategory(id); err != nil {
		return mapCatalogErr(err)
	}
	return nil
}

func (s *catalogService) ListItemsBySubcategory(subcategoryID string) ([]dto.ItemResponse, error) {
	if _, err := s.catalogRepo.FindSubcategoryByID(subcategoryID); err != nil {
		return nil, mapCatalogErr(err)
	}

	items, err := s.catalogRepo.FindItemsBySubcategory(subcategoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *buildItemResponse(&items[i]))
	}
	return responses, nil
}

// ---------------- Items ----------------

func (s *catalogService) ListItems() ([]dto.ItemResponse, error) {
	items, err := s.catalogRepo.FindItems()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, *buildItemResponse(&items[i]))
	}
	return responses, nil
}

func (s *catalogService) GetItem(id string) (*dto.ItemResponse, error) {
	item, err := s.catalogRepo.FindItemByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}
	return buildItemResponse(item), nil
}

func (s *catalogService) CreateItem(req *dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if !req.Price.IsPositive() {
		return nil, apperrors.ValidationError("Price must be greater than zero")
	}
	if req.Weight.IsNegative() {
		return nil, apperrors.ValidationError("Weight cannot be negative")
	}

	if _, err := s.catalogRepo.FindCategoryByID(req.CategoryID); err != nil {
		return nil, mapCatalogErr(err)
	}
	if _, err := s.catalogRepo.FindSubcategoryByID(req.SubcategoryID); err != nil {
		return nil, mapCatalogErr(err)
	}

	itemSlug, err := s.dedupedItemSlug(req.Name)
	if err != nil {
		return nil, err
	}

	item := &models.JewelryItem{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Weight:        req.Weight,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		ImageURL:      req.ImageURL,
		Slug:          itemSlug,
		IsActive:      true,
	}
	if err := s.catalogRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return buildItemResponse(item), nil
}

func (s *catalogService) UpdateItem(id string, req *dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := s.catalogRepo.FindItemByID(id)
	if err != nil {
		return nil, mapCatalogErr(err)
	}

	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, apperrors.ValidationError("Price must be greater than zero")
		}
		item.Price = *req.Price
	}
	if req.Weight != nil {
		if req.Weight.IsNegative() {
			return nil, apperrors.ValidationError("Weight cannot be negative")
		}
		item.Weight = *req.Weight
	}
	if req.Name != nil {
		// Slug was fixed at creation; renaming does not re-derive it.
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.catalogRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return buildItemResponse(item), nil
}

func (s *catalogService) DeleteItem(id string) error {
	if err := s.catalogRepo.DeleteItem(id); err != nil {
		return mapCatalogErr(err)
	}
	return nil
}

// dedupedItemSlug appends -1, -2, ... until the slug is unique. Items de-dup
// instead of rejecting, unlike categories and subcategories.
func (s *catalogService) dedupedItemSlug(name string) (string, error) {
	base := slug.Make(name)
	candidate := base

	for counter := 1; ; counter++ {
		exists, err := s.catalogRepo.ItemSlugExists(candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func mapCatalogErr(err error) error {
	switch {
	case errors.Is(err, repositories.ErrCategoryNotFound),
		errors.Is(err, repositories.ErrSubcategoryNotFound),
		errors.Is(err, repositories.ErrItemNotFound):
		return apperrors.ErrNotFound(err)
	default:
		return err
	}
}

func buildCategoryResponse(category *models.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Slug:        category.Slug,
	}
}

func buildSubcategoryResponse(subcategory *models.Subcategory) *dto.SubcategoryResponse {
	return &dto.SubcategoryResponse{
		ID:         subcategory.ID,
		Name:       subcategory.Name,
		CategoryID: subcategory.CategoryID,
		Slug:       subcategory.Slug,
	}
}

func buildItemResponse(item *models.JewelryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Price:         item.Price,
		Weight:        item.Weight,
		CategoryID:    item.CategoryID,
		SubcategoryID: item.SubcategoryID,
		ImageURL:      item.ImageURL,
		Slug:          item.Slug,
		IsActive:      item.IsActive,
		CreatedAt:     item.CreatedAt,
	}
}
