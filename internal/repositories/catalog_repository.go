package repositories

import (
	"errors"

	"aurum_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrSubcategoryNotFound = errors.New("subcategory not found")
	ErrItemNotFound        = errors.New("jewelry item not found")
)

type CatalogRepository interface {
	// Categories
	FindCategories() ([]models.Category, error)
	FindCategoryByID(id string) (*models.Category, error)
	CategorySlugExists(slug string) (bool, error)
	CreateCategory(category *models.Category) error
	UpdateCategory(category *models.Category) error
	DeleteCategory(id string) error

	// Subcategories
	FindSubcategories() ([]models.Subcategory, error)
	FindSubcategoryByID(id string) (*models.Subcategory, error)
	FindSubcategoriesByCategory(categoryID string) ([]models.Subcategory, error)
	SubcategorySlugExists(slug string) (bool, error)
	CreateSubcategory(subcategory *models.Subcategory) error
	UpdateSubcategory(subcategory *models.Subcategory) error
	DeleteSubcategory(id string) error

	// Items
	FindItems() ([]models.JewelryItem, error)
	FindItemByID(id string) (*models.JewelryItem, error)
	FindItemsBySubcategory(subcategoryID string) ([]models.JewelryItem, error)
	ItemSlugExists(slug string) (bool, error)
	CreateItem(item *models.JewelryItem) error
	UpdateItem(item *models.JewelryItem) error
	DeleteItem(id string) error
}

type CatalogRepositoryImpl struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &CatalogRepositoryImpl{db: db}
}

// Categories

func (r *CatalogRepositoryImpl) FindCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CatalogRepositoryImpl) FindCategoryByID(id string) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CatalogRepositoryImpl) CategorySlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepositoryImpl) CreateCategory(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *CatalogRepositoryImpl) UpdateCategory(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *CatalogRepositoryImpl) DeleteCategory(id string) error {
	result := r.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Subcategories

func (r *CatalogRepositoryImpl) FindSubcategories() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := r.db.Order("name").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *CatalogRepositoryImpl) FindSubcategoryByID(id string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.First(&subcategory, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, err
	}
	return &subcategory, nil
}

func (r *CatalogRepositoryImpl) FindSubcategoriesByCategory(categoryID string) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	if err := r.db.Where("category_id = ?", categoryID).Order("name").Find(&subcategories).Error; err != nil {
		return nil, err
	}
	return subcategories, nil
}

func (r *CatalogRepositoryImpl) SubcategorySlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Subcategory{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepositoryImpl) CreateSubcategory(subcategory *models.Subcategory) error {
	return r.db.Create(subcategory).Error
}

func (r *CatalogRepositoryImpl) UpdateSubcategory(subcategory *models.Subcategory) error {
	return r.db.Save(subcategory).Error
}

func (r *CatalogRepositoryImpl) DeleteSubcategory(id string) error {
	result := r.db.Delete(&models.Subcategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSubcategoryNotFound
	}
	return nil
}

// Items

func (r *CatalogRepositoryImpl) FindItems() ([]models.JewelryItem, error) {
	var items []models.JewelryItem
	if err := r.db.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepositoryImpl) FindItemByID(id string) (*models.JewelryItem, error) {
	var item models.JewelryItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepositoryImpl) FindItemsBySubcategory(subcategoryID string) ([]models.JewelryItem, error) {
	var items []models.JewelryItem
	if err := r.db.Where("subcategory_id = ?", subcategoryID).Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CatalogRepositoryImpl) ItemSlugExists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.JewelryItem{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepositoryImpl) CreateItem(item *models.JewelryItem) error {
	return r.db.Create(item).Error
}

func (r *CatalogRepositoryImpl) UpdateItem(item *models.JewelryItem) error {
	return r.db.Save(item).Error
}

func (r *CatalogRepositoryImpl) DeleteItem(id string) error {
	result := r.db.Delete(&models.JewelryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
