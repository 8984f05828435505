// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"productshop/internal/apperrors"
	"productshop/internal/models"
	"productshop/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=3,max=100"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) CreateCategory(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid category", err)
	}

	var existing models.Category
	if err := s.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("category already exists")
	}

	category := &models.Category{Name: req.Name}
	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category id not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) EditCategory(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "invalid category", err)
	}

	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	var existing models.Category
	if err := s.db.Where("name = ? AND id <> ?", req.Name, id).First(&existing).Error; err == nil {
		return nil, apperrors.Conflict("category already exists")
	}

	category.Name = req.Name
	if err := s.db.Save(category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

// DeleteCategory removes the category and its product associations.
// Products themselves survive; referential cleanup beyond the join
// table is left to the store.
func (s *CategoryService) DeleteCategory(id uuid.UUID) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(category).Association("Products").Clear(); err != nil {
		return nil, fmt.Errorf("failed to clear category products: %w", err)
	}

	if err := s.db.Delete(category).Error; err != nil {
		return nil, fmt.Errorf("failed to delete category: %w", err)
	}

	return category, nil
}
