// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productshop/internal/apperrors"
	"productshop/internal/models"
)

func TestAuthoritiesForNewUser(t *testing.T) {
	tests := []struct {
		userCount int64
		want      []string
	}{
		{0, []string{models.RoleUser, models.RoleModerator, models.RoleAdmin, models.RoleRoot}},
		{1, []string{models.RoleUser}},
		{42, []string{models.RoleUser}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AuthoritiesForNewUser(tt.userCount),
			"user count %d", tt.userCount)
	}
}

func TestApplyProfileEditRejectsWrongPassword(t *testing.T) {
	user := &models.User{Email: "alice@example.com"}
	assert.NoError(t, user.SetPassword("secret"))
	originalHash := user.PasswordHash

	err := ApplyProfileEdit(user, &EditProfileRequest{
		OldPassword: "wrong",
		Email:       "new@example.com",
		Password:    "changed",
	})

	assert.True(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, originalHash, user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret"))
}

func TestApplyProfileEditUpdatesEmail(t *testing.T) {
	user := &models.User{Email: "alice@example.com"}
	assert.NoError(t, user.SetPassword("secret"))
	originalHash := user.PasswordHash

	err := ApplyProfileEdit(user, &EditProfileRequest{
		OldPassword: "secret",
		Email:       "new@example.com",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	// No new password supplied: credentials are untouched.
	assert.Equal(t, originalHash, user.PasswordHash)
}

func TestApplyProfileEditRehashesNewPassword(t *testing.T) {
	user := &models.User{Email: "alice@example.com"}
	assert.NoError(t, user.SetPassword("secret"))

	err := ApplyProfileEdit(user, &EditProfileRequest{
		OldPassword: "secret",
		Email:       "alice@example.com",
		Password:    "changed",
	})

	assert.NoError(t, err)
	assert.NoError(t, user.CheckPassword("changed"))
	assert.Error(t, user.CheckPassword("secret"))
}
