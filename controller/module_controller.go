// controller/module_controller.go
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
)

// ModuleController administers the module registry. Reads are common;
// writes are an admin concern guarded by the registry's own module.
type ModuleController struct {
	moduleService service.IModuleService
	access        service.IAccessService
}

func NewModuleController(moduleService service.IModuleService, access service.IAccessService) *ModuleController {
	return &ModuleController{
		moduleService: moduleService,
		access:        access,
	}
}

// RegisterRoutes registers the API routes
func (mc *ModuleController) RegisterRoutes(r *gin.RouterGroup) {
	modules := r.Group("/modules/:moduleId")
	{
		modules.POST("", middleware.RequirePermission(mc.access, model.ModuleModules, model.ActionWrite), mc.CreateModule)
		modules.GET("", middleware.RequirePermission(mc.access, model.ModuleModules, model.ActionRead), mc.ListModules)
		modules.GET("/:id", middleware.RequirePermission(mc.access, model.ModuleModules, model.ActionRead), mc.GetModule)
		modules.PUT("/:id", middleware.RequirePermission(mc.access, model.ModuleModules, model.ActionWrite), mc.UpdateModule)
		modules.DELETE("/:id", middleware.RequirePermission(mc.access, model.ModuleModules, model.ActionDelete), mc.DeleteModule)
	}
}

// CreateModule endpoint
func (mc *ModuleController) CreateModule(c *gin.Context) {
	var module model.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid module data", qms_errors.ErrInvalidModuleData)
		return
	}
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	createdModule, err := mc.moduleService.CreateModule(c, module, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrModuleConflict):
			util.RespondWithError(c, http.StatusConflict, "Module already exists", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create module", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdModule)
}

// GetModule endpoint
func (mc *ModuleController) GetModule(c *gin.Context) {
	moduleID := c.Param("id")

	module, err := mc.moduleService.GetModule(c, moduleID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrModuleNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Module not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve module", err)
		}
		return
	}

	c.JSON(http.StatusOK, module)
}

// UpdateModule endpoint
func (mc *ModuleController) UpdateModule(c *gin.Context) {
	moduleID := c.Param("id")
	var module model.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid module data", qms_errors.ErrInvalidModuleData)
		return
	}
	module.ID = moduleID
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	updatedModule, err := mc.moduleService.UpdateModule(c, module, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrModuleNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Module not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update module", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedModule)
}

// DeleteModule endpoint
func (mc *ModuleController) DeleteModule(c *gin.Context) {
	moduleID := c.Param("id")
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := mc.moduleService.DeleteModule(c, moduleID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrModuleNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Module not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete module", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListModules endpoint
func (mc *ModuleController) ListModules(c *gin.Context) {
	modules, err := mc.moduleService.ListModules(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list modules", err)
		return
	}

	c.JSON(http.StatusOK, modules)
}
