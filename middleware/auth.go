package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/expenseinsight/expense-api/utils"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
	userNameKey  = "user_name"
)

// AuthMiddleware resolves the caller from a Bearer token. Identity is
// re-evaluated on every request; nothing is cached server-side. On failure
// the request aborts with 401 before any handler runs.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		claims, err := utils.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)
		c.Set(userNameKey, claims.Name)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id, or "" outside a valid
// session.
func GetUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func GetUserEmail(c *gin.Context) string {
	return c.GetString(userEmailKey)
}
