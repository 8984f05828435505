// internal/models/user.go
package models

import (
	"golang.org/x/crypto/bcrypt"
)

type Role struct {
	BaseModel
	Authority string `json:"authority" gorm:"uniqueIndex;size:50;not null"`
}

type User struct {
	BaseModel
	Username       string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email          string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash   string `json:"-" gorm:"size:255;not null"`
	FirstTimeLogin bool   `json:"first_time_login" gorm:"default:false"`

	// Relationships
	Authorities []Role  `json:"authorities,omitempty" gorm:"many2many:users_roles"`
	Orders      []Order `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// HasAuthority reports whether the user carries the given authority.
func (u *User) HasAuthority(authority string) bool {
	for _, role := range u.Authorities {
		if role.Authority == authority {
			return true
		}
	}
	return false
}

// AuthorityNames flattens the role set for token claims and responses.
func (u *User) AuthorityNames() []string {
	names := make([]string, 0, len(u.Authorities))
	for _, role := range u.Authorities {
		names = append(names, role.Authority)
	}
	return names
}
