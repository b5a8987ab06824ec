package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminPinMiddleware guards the dashboard endpoints with the static admin
// PIN, sent by the client in the X-Admin-Pin header after the verify step.
func AdminPinMiddleware(pin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Admin-Pin")
		if supplied == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing admin PIN"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(pin)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
