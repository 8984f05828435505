// internal/authz/authz_test.go
package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"productshop/internal/models"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/health", "/health", true},
		{"/health", "/health/live", false},
		{"/v1/categories/*", "/v1/categories/abc", true},
		{"/v1/categories/*", "/v1/categories", false},
		{"/v1/categories/*", "/v1/categories/abc/def", false},
		{"/v1/cart/**", "/v1/cart/details", true},
		{"/v1/cart/**", "/v1/cart/add-product", true},
		{"/v1/cart/**", "/v1/orders/my", false},
		{"/v1/products/fetch/*", "/v1/products/fetch/all", true},
		{"/v1/products/fetch/*", "/v1/products/abc", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.path),
			"pattern %q path %q", tt.pattern, tt.path)
	}
}

func TestDecide(t *testing.T) {
	table := NewTable(DefaultRules())

	user := []string{models.RoleUser}
	moderator := []string{models.RoleUser, models.RoleModerator}
	admin := []string{models.RoleUser, models.RoleModerator, models.RoleAdmin}

	tests := []struct {
		name          string
		method        string
		path          string
		authenticated bool
		roles         []string
		want          Decision
	}{
		{"health is public", "GET", "/health", false, nil, Allow},

		{"anonymous can register", "POST", "/v1/auth/register", false, nil, Allow},
		{"logged-in caller cannot register", "POST", "/v1/auth/register", true, user, DenyForbidden},
		{"anonymous can log in", "POST", "/v1/auth/login", false, nil, Allow},
		{"logged-in caller cannot log in again", "POST", "/v1/auth/login", true, user, DenyForbidden},
		{"refresh is public", "POST", "/v1/auth/refresh", false, nil, Allow},

		{"home needs a session", "GET", "/v1/home", false, nil, DenyUnauthenticated},
		{"user sees home", "GET", "/v1/home", true, user, Allow},
		{"user sees offers", "GET", "/v1/offers", true, user, Allow},

		{"user browses categories", "GET", "/v1/categories/fetch", true, user, Allow},
		{"user cannot list categories", "GET", "/v1/categories", true, user, DenyForbidden},
		{"user cannot create category", "POST", "/v1/categories", true, user, DenyForbidden},
		{"moderator creates category", "POST", "/v1/categories", true, moderator, Allow},
		{"moderator deletes category", "DELETE", "/v1/categories/abc", true, moderator, Allow},

		{"user views product details", "GET", "/v1/products/abc", true, user, Allow},
		{"user fetches products by category", "GET", "/v1/products/fetch/all", true, user, Allow},
		{"user cannot create product", "POST", "/v1/products", true, user, DenyForbidden},
		{"moderator edits product", "PUT", "/v1/products/abc", true, moderator, Allow},
		{"anonymous cannot view products", "GET", "/v1/products/abc", false, nil, DenyUnauthenticated},

		{"user owns a cart", "POST", "/v1/cart/add-product", true, user, Allow},
		{"cart needs a session", "GET", "/v1/cart/details", false, nil, DenyUnauthenticated},

		{"user sees own orders", "GET", "/v1/orders/my", true, user, Allow},
		{"user cannot see all orders", "GET", "/v1/orders/all", true, user, DenyForbidden},
		{"moderator cannot see all orders", "GET", "/v1/orders/all", true, moderator, DenyForbidden},
		{"admin sees all orders", "GET", "/v1/orders/all", true, admin, Allow},

		{"user edits own profile", "PUT", "/v1/users/profile", true, user, Allow},
		{"moderator cannot list users", "GET", "/v1/users", true, moderator, DenyForbidden},
		{"admin lists users", "GET", "/v1/users", true, admin, Allow},
		{"moderator cannot promote", "POST", "/v1/users/set-admin/abc", true, moderator, DenyForbidden},
		{"admin promotes to moderator", "POST", "/v1/users/set-moderator/abc", true, admin, Allow},

		{"unmatched path needs a session", "GET", "/v1/unknown", false, nil, DenyUnauthenticated},
		{"unmatched path allows any session", "GET", "/v1/unknown", true, user, Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Decide(tt.method, tt.path, tt.authenticated, tt.roles)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideFirstMatchWins(t *testing.T) {
	table := NewTable([]Rule{
		{Method: "GET", Pattern: "/v1/orders/all", Access: AccessRoles, Roles: []string{models.RoleAdmin}},
		{Method: "GET", Pattern: "/v1/orders/*", Access: AccessAuthenticated},
	})

	// The specific rule shadows the wildcard for the same path.
	got := table.Decide("GET", "/v1/orders/all", true, []string{models.RoleUser})
	assert.Equal(t, DenyForbidden, got)
}

func TestDecideRoleRulesRequireAuthentication(t *testing.T) {
	table := NewTable(DefaultRules())

	got := table.Decide("GET", "/v1/orders/all", false, nil)
	assert.Equal(t, DenyUnauthenticated, got)
}
