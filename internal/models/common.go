// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Authority names, seeded once when the role table is empty.
const (
	RoleUser      = "ROLE_USER"
	RoleModerator = "ROLE_MODERATOR"
	RoleAdmin     = "ROLE_ADMIN"
	RoleRoot      = "ROLE_ROOT"
)

// RoleTier is the assignable tier requested through the admin API.
// Tiers are additive: moderator implies user, admin implies both.
// ROLE_ROOT is granted only to the first registered user and is never
// assignable through the API.
type RoleTier string

const (
	TierUser      RoleTier = "user"
	TierModerator RoleTier = "moderator"
	TierAdmin     RoleTier = "admin"
)

// AuthoritiesForTier expands a tier into the authority set that
// replaces the target user's roles wholesale. Unknown tiers expand to
// nil.
func AuthoritiesForTier(tier RoleTier) []string {
	switch tier {
	case TierUser:
		return []string{RoleUser}
	case TierModerator:
		return []string{RoleUser, RoleModerator}
	case TierAdmin:
		return []string{RoleUser, RoleModerator, RoleAdmin}
	}
	return nil
}
