// controller/iteration_controller.go
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

type IterationController struct {
	iterationService service.IIterationService
	access           service.IAccessService
}

func NewIterationController(iterationService service.IIterationService, access service.IAccessService) *IterationController {
	return &IterationController{
		iterationService: iterationService,
		access:           access,
	}
}

// RegisterRoutes registers the API routes
func (ic *IterationController) RegisterRoutes(r *gin.RouterGroup) {
	iterations := r.Group("/iterations/:moduleId")
	{
		iterations.POST("", middleware.RequirePermission(ic.access, model.ModuleIterations, model.ActionWrite), ic.CreateIteration)
		iterations.GET("", middleware.RequirePermission(ic.access, model.ModuleIterations, model.ActionRead), ic.ListIterations)
		iterations.GET("/:id", middleware.RequirePermission(ic.access, model.ModuleIterations, model.ActionRead), ic.GetIteration)
		iterations.PUT("/:id", middleware.RequirePermission(ic.access, model.ModuleIterations, model.ActionWrite), ic.UpdateIteration)
		iterations.DELETE("/:id", middleware.RequirePermission(ic.access, model.ModuleIterations, model.ActionDelete), ic.DeleteIteration)
	}
}

// CreateIteration endpoint
func (ic *IterationController) CreateIteration(c *gin.Context) {
	var iteration model.Iteration
	if err := c.ShouldBindJSON(&iteration); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid iteration data", qms_errors.ErrInvalidIterationData)
		return
	}
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}
	if !scope.All {
		iteration.CompanyID = scope.CompanyID
	}

	createdIteration, err := ic.iterationService.CreateIteration(c, iteration, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrDatabaseOperation) {
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		} else {
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create iteration", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdIteration)
}

// GetIteration endpoint
func (ic *IterationController) GetIteration(c *gin.Context) {
	iterationID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	iteration, err := ic.iterationService.GetIteration(c, scope, iterationID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrIterationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Iteration not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve iteration", err)
		}
		return
	}

	c.JSON(http.StatusOK, iteration)
}

// UpdateIteration endpoint
func (ic *IterationController) UpdateIteration(c *gin.Context) {
	iterationID := c.Param("id")
	var iteration model.Iteration
	if err := c.ShouldBindJSON(&iteration); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid iteration data", qms_errors.ErrInvalidIterationData)
		return
	}
	iteration.ID = iterationID
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	updatedIteration, err := ic.iterationService.UpdateIteration(c, scope, iteration, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrIterationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Iteration not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update iteration", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedIteration)
}

// DeleteIteration endpoint
func (ic *IterationController) DeleteIteration(c *gin.Context) {
	iterationID := c.Param("id")
	identity, err := auth.IdentityFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	if err := ic.iterationService.DeleteIteration(c, scope, iterationID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrIterationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Iteration not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete iteration", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListIterations endpoint
func (ic *IterationController) ListIterations(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	iterations, err := ic.iterationService.ListIterations(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list iterations", err)
		return
	}

	c.JSON(http.StatusOK, iterations)
}
