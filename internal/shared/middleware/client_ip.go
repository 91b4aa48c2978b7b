package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/utils"
)

type clientIPKey struct{}

// ClientIPMiddleware extracts the client IP address from the request
// and injects it into the context for downstream handlers to use.
func ClientIPMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := utils.ExtractClientIP(c)

		c.Set("client_ip", clientIP)

		ctx := context.WithValue(c.Request.Context(), clientIPKey{}, clientIP)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetClientIPFromContext retrieves the client IP from context.
// Returns empty string if not found.
func GetClientIPFromContext(ctx context.Context) string {
	if ip, ok := ctx.Value(clientIPKey{}).(string); ok {
		return ip
	}
	return ""
}

// ClientIP returns the IP captured by ClientIPMiddleware, extracting it
// directly when the middleware is not installed.
func ClientIP(c *gin.Context) string {
	if ip := GetClientIPFromContext(c.Request.Context()); ip != "" {
		return ip
	}
	return utils.ExtractClientIP(c)
}
