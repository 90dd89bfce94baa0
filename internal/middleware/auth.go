package middleware

import (
	"net/http"
	"strings"

	"workaholic_backend/internal/auth"
	"workaholic_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthMiddleware validates the bearer token and stores the caller's
// account id and email in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Authorization header missing or invalid",
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// GetUserID extracts the authenticated account id from the context.
func GetUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
