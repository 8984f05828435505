// internal/authz/rules.go
package authz

import (
	"productshop/internal/models"
)

// DefaultRules is the route-access table for the storefront API,
// checked by middleware before any handler runs. Register and login
// are anonymous-only; catalog browsing, the cart, personal orders and
// the profile need a session; catalog mutation needs the moderator
// role; user administration and the all-orders view need admin.
func DefaultRules() []Rule {
	moderator := []string{models.RoleModerator, models.RoleAdmin, models.RoleRoot}
	admin := []string{models.RoleAdmin, models.RoleRoot}

	return []Rule{
		{Method: "GET", Pattern: "/health", Access: AccessPublic},

		{Method: "POST", Pattern: "/v1/auth/register", Access: AccessAnonymous},
		{Method: "POST", Pattern: "/v1/auth/login", Access: AccessAnonymous},
		{Method: "POST", Pattern: "/v1/auth/refresh", Access: AccessPublic},

		{Method: "GET", Pattern: "/v1/home", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/offers", Access: AccessAuthenticated},

		{Method: "GET", Pattern: "/v1/categories/fetch", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/categories", Access: AccessRoles, Roles: moderator},
		{Method: "GET", Pattern: "/v1/categories/*", Access: AccessRoles, Roles: moderator},
		{Method: "POST", Pattern: "/v1/categories", Access: AccessRoles, Roles: moderator},
		{Method: "PUT", Pattern: "/v1/categories/*", Access: AccessRoles, Roles: moderator},
		{Method: "DELETE", Pattern: "/v1/categories/*", Access: AccessRoles, Roles: moderator},

		{Method: "GET", Pattern: "/v1/products/fetch/*", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/products/*", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/products", Access: AccessRoles, Roles: moderator},
		{Method: "POST", Pattern: "/v1/products", Access: AccessRoles, Roles: moderator},
		{Method: "PUT", Pattern: "/v1/products/*", Access: AccessRoles, Roles: moderator},
		{Method: "DELETE", Pattern: "/v1/products/*", Access: AccessRoles, Roles: moderator},

		{Pattern: "/v1/cart/**", Access: AccessAuthenticated},

		{Method: "GET", Pattern: "/v1/orders/all", Access: AccessRoles, Roles: admin},
		{Method: "GET", Pattern: "/v1/orders/my", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/orders/*", Access: AccessAuthenticated},

		{Method: "GET", Pattern: "/v1/users/profile", Access: AccessAuthenticated},
		{Method: "PUT", Pattern: "/v1/users/profile", Access: AccessAuthenticated},
		{Method: "GET", Pattern: "/v1/users", Access: AccessRoles, Roles: admin},
		{Method: "POST", Pattern: "/v1/users/set-user/*", Access: AccessRoles, Roles: admin},
		{Method: "POST", Pattern: "/v1/users/set-moderator/*", Access: AccessRoles, Roles: admin},
		{Method: "POST", Pattern: "/v1/users/set-admin/*", Access: AccessRoles, Roles: admin},
	}
}
