// internal/utils/response_test.go
package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"productshop/internal/apperrors"
)

func TestDomainErrorResponseStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{apperrors.NotFound("order id not found"), http.StatusNotFound},
		{apperrors.Conflict("category already exists"), http.StatusConflict},
		{apperrors.Validation("cart is empty"), http.StatusBadRequest},
		{apperrors.Unauthorized("incorrect password"), http.StatusForbidden},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		DomainErrorResponse(c, tt.err)

		assert.Equal(t, tt.status, w.Code, "error %v", tt.err)
	}
}

// Unclassified failures, a broken database connection for instance,
// must not masquerade as a credential or input problem, and their
// message must not reach the caller.
func TestDomainErrorResponseHidesInternalFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	DomainErrorResponse(c, errors.New("dial tcp 127.0.0.1:5432: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.NotContains(t, resp.Error.Message, "connection refused")
}

func TestDomainErrorResponseKeepsWrappedKind(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	err := apperrors.Wrap(apperrors.KindUnauthorized, "invalid refresh token", errors.New("token is expired"))
	DomainErrorResponse(c, err)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
