// controller/permission_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/middleware"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
	helper_util "github.com/idatumhimanshu-alt/syscomply-app-sub001/util/helper"
)

// PermissionController administers the flat grant table. There is no
// update: a grant is created or revoked, never edited.
type PermissionController struct {
	permissionService service.IPermissionService
	access            service.IAccessService
}

func NewPermissionController(permissionService service.IPermissionService, access service.IAccessService) *PermissionController {
	return &PermissionController{
		permissionService: permissionService,
		access:            access,
	}
}

// RegisterRoutes registers the API routes
func (pc *PermissionController) RegisterRoutes(r *gin.RouterGroup) {
	permissions := r.Group("/permissions/:moduleId")
	{
		permissions.POST("", middleware.RequirePermission(pc.access, model.ModulePermissions, model.ActionWrite), pc.GrantPermission)
		permissions.GET("", middleware.RequirePermission(pc.access, model.ModulePermissions, model.ActionRead), pc.ListPermissions)
		permissions.GET("/role/:roleId", middleware.RequirePermission(pc.access, model.ModulePermissions, model.ActionRead), pc.ListPermissionsByRole)
		permissions.GET("/:id", middleware.RequirePermission(pc.access, model.ModulePermissions, model.ActionRead), pc.GetPermission)
		permissions.DELETE("/:id", middleware.RequirePermission(pc.access, model.ModulePermissions, model.ActionDelete), pc.RevokePermission)
	}
}

// GrantPermission endpoint
func (pc *PermissionController) GrantPermission(c *gin.Context) {
	var permission model.Permission
	if err := c.ShouldBindJSON(&permission); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid permission data", qms_errors.ErrInvalidPermissionData)
		return
	}
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	createdPermission, err := pc.permissionService.GrantPermission(c, permission, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrPermissionConflict):
			util.RespondWithError(c, http.StatusConflict, "Permission already granted", err)
		case errors.Is(err, qms_errors.ErrModuleNotFound):
			util.RespondWithError(c, http.StatusBadRequest, "Unknown module", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to grant permission", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdPermission)
}

// GetPermission endpoint
func (pc *PermissionController) GetPermission(c *gin.Context) {
	permissionID := c.Param("id")

	permission, err := pc.permissionService.GetPermission(c, permissionID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrPermissionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Permission not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve permission", err)
		}
		return
	}

	c.JSON(http.StatusOK, permission)
}

// RevokePermission endpoint
func (pc *PermissionController) RevokePermission(c *gin.Context) {
	permissionID := c.Param("id")
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := pc.permissionService.RevokePermission(c, permissionID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrPermissionNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Permission not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to revoke permission", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPermissions endpoint
func (pc *PermissionController) ListPermissions(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	permissions, err := pc.permissionService.ListPermissions(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list permissions", err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}

// ListPermissionsByRole endpoint
func (pc *PermissionController) ListPermissionsByRole(c *gin.Context) {
	roleID := c.Param("roleId")

	permissions, err := pc.permissionService.ListPermissionsByRole(c, roleID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list role permissions", err)
		return
	}

	c.JSON(http.StatusOK, permissions)
}
