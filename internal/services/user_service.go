// internal/services/user_service.go
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

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "username", "email"})
	query = utils.ApplyPagination(query, params)

	if err := query.Preload("Authorities").Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to load users: %w", err)
	}

	return users, total, nil
}

func (s *UserService) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Authorities").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user id not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Preload("Authorities").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("username not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

// SetUserRole replaces the target user's role set wholesale with the
// authorities the requested tier expands to. The root tier is not
// assignable here.
func (s *UserService) SetUserRole(id uuid.UUID, tier models.RoleTier) (*models.User, error) {
	authorities := models.AuthoritiesForTier(tier)
	if authorities == nil {
		return nil, apperrors.Validation("unknown role tier")
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	var roles []models.Role
	if err := s.db.Where("authority IN ?", authorities).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roles) != len(authorities) {
		return nil, fmt.Errorf("role table is missing authorities for tier %s", tier)
	}

	if err := s.db.Model(user).Association("Authorities").Replace(roles); err != nil {
		return nil, fmt.Errorf("failed to replace roles: %w", err)
	}

	user.Authorities = roles
	return user, nil
}
