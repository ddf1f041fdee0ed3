package middleware

import (
	"net/http"
	"strings"

	"smartmeet/utils"

	"github.com/gin-gonic/gin"
)

// ClientIDKey is the context key carrying the authenticated client ID.
const ClientIDKey = "clientID"

// JWTAuthMiddleware guards assistant endpoints with a bearer token issued
// by the token endpoint. The token subject is stored on the request context
// for handlers that want it.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		clientID, err := utils.ExtractClientIDFromToken(tokenString)
		if err != nil || clientID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set(ClientIDKey, clientID)
		c.Next()
	}
}
