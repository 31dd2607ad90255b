package middleware

import (
	"net/http"

	"github.com/gigboard/gigboard-api/pkg/jwt"
	"github.com/gigboard/gigboard-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenAuthMiddleware validates authentication tokens
func TokenAuthMiddleware(validTokens ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("freelancers_api_auth_token")

		if token == "" {
			logger.Warn("Missing authentication token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing authentication token"})
			c.Abort()
			return
		}

		valid := false
		for _, validToken := range validTokens {
			if jwt.TimingSafeCompare(token, validToken) {
				valid = true
				break
			}
		}

		if !valid {
			logger.Warn("Invalid authentication token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authentication token"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// InternalAPIAuthMiddleware validates the internal API token
func InternalAPIAuthMiddleware(validToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-internal-freelancers-api-auth-token")

		if token == "" || !jwt.TimingSafeCompare(token, validToken) {
			logger.Warn("Invalid internal API token",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing internal API token"})
			c.Abort()
			return
		}

		c.Next()
	}
}
