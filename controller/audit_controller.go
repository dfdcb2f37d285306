// controller/audit_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/audit"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/middleware"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

// AuditController exposes the permission decision log. Read-only:
// decisions are written by the access checks themselves.
type AuditController struct {
	auditService audit.Service
	access       service.IAccessService
}

func NewAuditController(auditService audit.Service, access service.IAccessService) *AuditController {
	return &AuditController{
		auditService: auditService,
		access:       access,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	auditRoutes := r.Group("/audit/:moduleId")
	{
		auditRoutes.GET("", middleware.RequirePermission(ac.access, model.ModulePermissions, model.ActionRead), ac.QueryDecisions)
	}
}

// QueryDecisions endpoint. Accepts optional from/to (RFC 3339) and
// user_id/module_id filters; defaults to the last 24 hours.
func (ac *AuditController) QueryDecisions(c *gin.Context) {
	to := time.Now()
	from := to.Add(-24 * time.Hour)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
			return
		}
		to = parsed
	}
	if !from.Before(to) {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid time range", errors.New("from must precede to"))
		return
	}

	decisions, err := ac.auditService.QueryDecisions(c, from, to, c.Query("user_id"), c.Query("module_id"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query audit log", err)
		return
	}

	c.JSON(http.StatusOK, decisions)
}
