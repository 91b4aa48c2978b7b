package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

const (
	// ContextAdminKey is where the authenticated admin username is stored.
	ContextAdminKey = "admin_username"
)

// AdminAuth guards admin-only routes with a Bearer token.
// Missing header, malformed token, bad signature and expiry all yield the
// same 401; no detail about which check failed is leaked.
func AdminAuth(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "invalid authentication credentials")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authentication credentials")
			c.Abort()
			return
		}

		claims, err := manager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid authentication credentials")
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, claims.Username)
		c.Next()
	}
}
