// internal/models/models_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAuthoritiesForTier(t *testing.T) {
	tests := []struct {
		tier RoleTier
		want []string
	}{
		{TierUser, []string{RoleUser}},
		{TierModerator, []string{RoleUser, RoleModerator}},
		{TierAdmin, []string{RoleUser, RoleModerator, RoleAdmin}},
		{RoleTier("root"), nil},
		{RoleTier(""), nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AuthoritiesForTier(tt.tier), "tier %q", tt.tier)
	}
}

func TestDiscountedPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"100", "80"},
		{"10.50", "8.40"},
		{"0", "0"},
		{"0.05", "0.04"},
	}

	for _, tt := range tests {
		price := decimal.RequireFromString(tt.price)
		want := decimal.RequireFromString(tt.want)
		got := DiscountedPrice(price)
		assert.True(t, got.Equal(want), "price %s: expected %s, got %s", tt.price, want, got)
	}
}

func TestPasswordHashing(t *testing.T) {
	u := &User{}

	err := u.SetPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", u.PasswordHash)

	assert.NoError(t, u.CheckPassword("secret123"))
	assert.Error(t, u.CheckPassword("wrong"))
}

func TestHasAuthority(t *testing.T) {
	u := &User{
		Authorities: []Role{
			{Authority: RoleUser},
			{Authority: RoleModerator},
		},
	}

	assert.True(t, u.HasAuthority(RoleUser))
	assert.True(t, u.HasAuthority(RoleModerator))
	assert.False(t, u.HasAuthority(RoleAdmin))
}

func TestAuthorityNames(t *testing.T) {
	u := &User{
		Authorities: []Role{
			{Authority: RoleUser},
			{Authority: RoleModerator},
		},
	}

	assert.Equal(t, []string{RoleUser, RoleModerator}, u.AuthorityNames())
}
