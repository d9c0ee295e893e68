package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medzone/storefront/internal/backend"
)

// BearerPassthrough lifts an incoming bearer token into the request context
// so the backend client forwards it. Authentication itself is delegated to
// the pharmacy API; requests without a token pass through untouched.
func BearerPassthrough() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		token := strings.TrimSpace(parts[1])
		if token != "" {
			ctx := backend.WithToken(c.Request.Context(), token)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}
