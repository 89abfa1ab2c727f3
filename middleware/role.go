package middleware

import (
	"net/http"

	"saarthi/models"

	"github.com/gin-gonic/gin"
)

// RequirePolice rejects requests whose principal is not a police officer.
// Must run after JWTAuthMiddleware.
func RequirePolice() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if principal.Role != models.RolePolice {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Unauthorized access"})
			return
		}
		c.Next()
	}
}
