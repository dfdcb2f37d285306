// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
)

// Authenticate validates the bearer token and attaches the decoded
// identity to the request context. Requests without a valid token
// never reach a handler.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			logger.Warn("Malformed Authorization header", zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := auth.ParseAndValidate(tokenString)
		if err != nil {
			logger.Warn("Token validation failed", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		auth.SetIdentity(c, auth.Identity{
			UserID:    claims.UserID,
			RoleID:    claims.RoleID,
			CompanyID: claims.CompanyID,
		})
		c.Next()
	}
}
