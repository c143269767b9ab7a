package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAuth rejects requests that carry no logged-in session. It relies on
// InjectSession having run first.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(SessionUserKey) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		c.Next()
	}
}
