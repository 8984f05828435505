// internal/apperrors/errors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		kind Kind
	}{
		{NotFound("missing"), KindNotFound},
		{Conflict("taken"), KindConflict},
		{Validation("bad input"), KindValidation},
		{Unauthorized("nope"), KindUnauthorized},
	}

	for _, tt := range tests {
		kind, ok := KindOf(tt.err)
		assert.True(t, ok)
		assert.Equal(t, tt.kind, kind)
	}
}

func TestKindOfPlainError(t *testing.T) {
	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading product: %w", NotFound("product id not found"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(KindConflict, "saving category", cause)

	assert.True(t, IsConflict(err))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "saving category")
}
