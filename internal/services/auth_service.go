// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"productshop/internal/apperrors"
	"productshop/internal/config"
	"productshop/internal/database"
	"productshop/internal/models"
	"productshop/internal/utils"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,username"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=3"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type EditProfileRequest struct {
	OldPassword     string `json:"old_password" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password,omitempty" validate:"omitempty,min=3"`
	ConfirmPassword string `json:"confirm_password,omitempty" validate:"eqfield=Password"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		db:  db,
		cfg: cfg,
	}
}

// Register creates a user. The very first registered user receives
// all four authorities; every later registrant receives ROLE_USER
// only. A duplicate username or email is a validation failure and
// creates no row.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	if err := database.SeedRoles(s.db); err != nil {
		return nil, err
	}

	var existingUser models.User
	if err := s.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existingUser).Error; err == nil {
		if existingUser.Email == req.Email {
			return nil, apperrors.Validation("user with this email already exists")
		}
		return nil, apperrors.Validation("username already taken")
	}

	roles, err := s.rolesForNewUser()
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Authorities: roles,
	}

	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueTokens(user)
}

// AuthoritiesForNewUser returns the authority names a registrant
// receives given how many users already exist: every authority for
// the very first user, the base role for everyone after.
func AuthoritiesForNewUser(userCount int64) []string {
	if userCount == 0 {
		return []string{
			models.RoleUser,
			models.RoleModerator,
			models.RoleAdmin,
			models.RoleRoot,
		}
	}
	return []string{models.RoleUser}
}

func (s *AuthService) rolesForNewUser() ([]models.Role, error) {
	var userCount int64
	if err := s.db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	authorities := AuthoritiesForNewUser(userCount)

	var roles []models.Role
	if err := s.db.Where("authority IN ?", authorities).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	if len(roles) != len(authorities) {
		return nil, fmt.Errorf("role table is missing seeded authorities")
	}

	return roles, nil
}

func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	var user models.User
	if err := s.db.Preload("Authorities").Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("invalid username or password")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.Unauthorized("invalid username or password")
	}

	return s.issueTokens(&user)
}

func (s *AuthService) RefreshToken(refreshToken string) (*AuthResponse, error) {
	userIDStr, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, "invalid refresh token", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnauthorized, "invalid user ID in token", err)
	}

	var user models.User
	if err := s.db.Preload("Authorities").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return s.issueTokens(&user)
}

// Profile returns the user and flips FirstTimeLogin false to true on
// the first authenticated view. The flag is one-way and never reset.
func (s *AuthService) Profile(username string) (*models.User, bool, error) {
	var user models.User
	if err := s.db.Preload("Authorities").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, apperrors.NotFound("username not found")
		}
		return nil, false, fmt.Errorf("database error: %w", err)
	}

	firstVisit := !user.FirstTimeLogin
	if firstVisit {
		if err := s.db.Model(&user).Update("first_time_login", true).Error; err != nil {
			return nil, false, fmt.Errorf("failed to record first login: %w", err)
		}
	}

	return &user, firstVisit, nil
}

// EditProfile updates the email and, when supplied, the password. The
// caller must prove the current password; a mismatch is an
// authorization failure and leaves stored credentials unchanged.
func (s *AuthService) EditProfile(username string, req *EditProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "validation failed", err)
	}

	var user models.User
	if err := s.db.Preload("Authorities").Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("username not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := ApplyProfileEdit(&user, req); err != nil {
		return nil, err
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// ApplyProfileEdit verifies the current password and applies the
// requested changes to the user in memory. A wrong password is an
// authorization failure and leaves the user untouched; the password
// is re-hashed only when a new one is supplied.
func ApplyProfileEdit(user *models.User, req *EditProfileRequest) error {
	if err := user.CheckPassword(req.OldPassword); err != nil {
		return apperrors.Unauthorized("incorrect password")
	}

	user.Email = req.Email
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
	}

	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(
		user.ID,
		user.Username,
		user.AuthorityNames(),
		s.cfg.JWT.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600, // Convert hours to seconds
	}, nil
}
