package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"file-vault-api/internal/infrastructure/jwt"
)

const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// AuthMiddleware resolves the request principal from the bearer token.
// A missing or malformed header is 401; a token the jwt service rejects
// (bad signature, expired, garbage) is 403.
func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				gin.H{"error": "invalid or expired token"},
			)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)

		c.Next()
	}
}
