// middleware/permission.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
)

// RequirePermission gates a route on the (role, module, action) table.
// It runs after Authenticate and stores the resolved role tier on the
// context so handlers can scope their queries.
func RequirePermission(access service.IAccessService, moduleID string, action model.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := auth.IdentityFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		decision, err := access.CheckAccess(c.Request.Context(), identity, moduleID, action)
		if err != nil {
			logger.Error("Permission check failed",
				zap.Error(err),
				zap.String("userID", identity.UserID),
				zap.String("moduleID", moduleID))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}
		if !decision.Allowed {
			logger.Warn("Permission denied",
				zap.String("userID", identity.UserID),
				zap.String("roleID", identity.RoleID),
				zap.String("moduleID", moduleID),
				zap.String("action", string(action)))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		auth.SetRoleTier(c, decision.Tier)
		c.Next()
	}
}
