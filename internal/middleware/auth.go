// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"productshop/internal/authz"
	"productshop/internal/utils"
)

// Authenticate parses a bearer token when present and records the
// caller's identity in the request context. It never rejects on its
// own; Authorize decides access from the table.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("authorities", claims.Authorities)
		c.Next()
	}
}

// Authorize checks every request against the route-access table
// before the handler runs. Anonymous-only paths reject authenticated
// callers, authenticated paths reject anonymous ones, role-gated
// paths require membership in the allowed role set.
func Authorize(table *authz.Table) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, authenticated := utils.GetUserIDFromContext(c)
		roles := utils.GetAuthoritiesFromContext(c)

		switch table.Decide(c.Request.Method, c.Request.URL.Path, authenticated, roles) {
		case authz.Allow:
			c.Next()
		case authz.DenyUnauthenticated:
			utils.UnauthorizedResponse(c, "")
			c.Abort()
		case authz.DenyForbidden:
			utils.ForbiddenResponse(c, "")
			c.Abort()
		}
	}
}
