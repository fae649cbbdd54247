package middleware

import (
	"net/http"
	"strings"

	"film-catalog/config"
	"film-catalog/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts "Authorization: Bearer <token>" issued by
// users.IssueToken and exposes the claims as the "user_id" and "role" keys.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.JWT_SECRET == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			return
		}

		scheme, raw, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || scheme != "Bearer" || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token missing"})
			return
		}

		claims, err := users.ParseToken(config.JWT_SECRET, strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
