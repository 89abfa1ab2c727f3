// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"saarthi/models"
	"saarthi/utils"

	"github.com/gin-gonic/gin"
)

// principalKey is the gin context key carrying the decoded principal.
const principalKey = "principal"

// JWTAuthMiddleware validates the bearer token and stores the decoded
// principal in the request context. A token whose subject does not decode
// into a principal is an authentication failure, not a server error.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		principal, err := utils.PrincipalFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// GetPrincipal retrieves the decoded principal stored by JWTAuthMiddleware.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return models.Principal{}, false
	}
	principal, ok := v.(models.Principal)
	return principal, ok
}
