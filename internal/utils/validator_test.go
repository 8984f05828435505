// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registrationInput struct {
	Username        string `validate:"required,username"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=3"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

func TestValidateStructAcceptsValidInput(t *testing.T) {
	err := ValidateStruct(registrationInput{
		Username:        "alice_1",
		Email:           "alice@example.com",
		Password:        "secret",
		ConfirmPassword: "secret",
	})
	assert.NoError(t, err)
}

func TestUsernameValidation(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"alice", true},
		{"alice_1", true},
		{"ab", false},             // too short
		{"alice-smith", false},    // hyphen not allowed
		{"alice smith", false},    // space not allowed
		{"álice", false},          // non-ascii
	}

	for _, tt := range tests {
		err := ValidateStruct(registrationInput{
			Username:        tt.username,
			Email:           "alice@example.com",
			Password:        "secret",
			ConfirmPassword: "secret",
		})
		if tt.valid {
			assert.NoError(t, err, "username %q", tt.username)
		} else {
			assert.Error(t, err, "username %q", tt.username)
		}
	}
}

func TestPasswordMismatchMessage(t *testing.T) {
	err := ValidateStruct(registrationInput{
		Username:        "alice_1",
		Email:           "alice@example.com",
		Password:        "secret",
		ConfirmPassword: "different",
	})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "confirmpassword", errs[0].Field)
	assert.Equal(t, "eqfield", errs[0].Tag)
	assert.Equal(t, "Passwords do not match", errs[0].Message)
}

func TestGetValidationErrorsCollectsAllFailures(t *testing.T) {
	err := ValidateStruct(registrationInput{
		Username: "x",
		Email:    "not-an-email",
	})
	assert.Error(t, err)

	errs := GetValidationErrors(err)
	fields := make(map[string]string)
	for _, e := range errs {
		fields[e.Field] = e.Tag
	}

	assert.Equal(t, "username", fields["username"])
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["password"])
}
