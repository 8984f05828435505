// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"productshop/internal/apperrors"
	"productshop/internal/models"
	"productshop/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=255"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	CategoryIDs []uuid.UUID     `json:"category_ids" validate:"required,min=1"`
}

type EditProductRequest struct {
	Name        string          `json:"name" validate:"required,min=3,max=255"`
	Description string          `json:"description" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"image_url,omitempty"`
	CategoryIDs []uuid.UUID     `json:"category_ids" validate:"required,min=1"`
}

// ProductDetails carries the product plus the discounted price when
// an active offer references it.
type ProductDetails struct {
	models.Product
	DiscountedPrice *decimal.Decimal `json:"discounted_price,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid product", err)
	}
	if req.Price.IsNegative() {
		return nil, apperrors.Validation("price must not be negative")
	}

	var existing models.Product
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("product already exists")
	}

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Categories:  categories,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

func (s *ProductService) GetProducts() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Categories").Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return products, nil
}

// GetProduct returns the product with the discounted price attached
// when an active offer references it.
func (s *ProductService) GetProduct(id uuid.UUID) (*ProductDetails, error) {
	var product models.Product
	if err := s.db.Preload("Categories").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product with the given id was not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	details := &ProductDetails{Product: product}

	var offer models.Offer
	if err := s.db.Where("product_id = ?", id).First(&offer).Error; err == nil {
		details.DiscountedPrice = &offer.Price
	}

	return details, nil
}

// EditProduct updates the product and reprices any active offer
// referencing it to the discount fraction of the new price.
func (s *ProductService) EditProduct(id uuid.UUID, req *EditProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid product", err)
	}
	if req.Price.IsNegative() {
		return nil, apperrors.Validation("price must not be negative")
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("product with the given id was not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var existing models.Product
	if err := s.db.Where("name = ? AND id <> ?", req.Name, id).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("product already exists")
	}

	categories, err := s.resolveCategories(req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}

	if err := s.db.Model(&product).Association("Categories").Replace(categories); err != nil {
		return nil, fmt.Errorf("failed to replace categories: %w", err)
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	// Price changes propagate to the active offer, if any.
	var offer models.Offer
	if err := s.db.Where("product_id = ?", id).First(&offer).Error; err == nil {
		offer.Price = models.DiscountedPrice(product.Price)
		if err := s.db.Save(&offer).Error; err != nil {
			return nil, fmt.Errorf("failed to reprice offer: %w", err)
		}
	}

	product.Categories = categories
	return &product, nil
}

func (s *ProductService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("product with the given id was not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&product).Association("Categories").Clear(); err != nil {
		return fmt.Errorf("failed to clear product categories: %w", err)
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

// GetProductsByCategory lists products belonging to the named
// category.
func (s *ProductService) GetProductsByCategory(category string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Joins("JOIN products_categories pc ON pc.product_id = products.id").
		Joins("JOIN categories c ON c.id = pc.category_id").
		Where("c.name = ?", category).
		Preload("Categories").
		Order("products.name asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load products by category: %w", err)
	}
	return products, nil
}

func (s *ProductService) resolveCategories(ids []uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) != len(ids) {
		return nil, apperrors.Validation("invalid category")
	}
	return categories, nil
}
