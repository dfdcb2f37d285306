// controller/department_controller.go
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

type DepartmentController struct {
	departmentService service.IDepartmentService
	access            service.IAccessService
}

func NewDepartmentController(departmentService service.IDepartmentService, access service.IAccessService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		access:            access,
	}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.RouterGroup) {
	departments := r.Group("/departments/:moduleId")
	{
		departments.POST("", middleware.RequirePermission(dc.access, model.ModuleDepartments, model.ActionWrite), dc.CreateDepartment)
		departments.GET("", middleware.RequirePermission(dc.access, model.ModuleDepartments, model.ActionRead), dc.ListDepartments)
		departments.GET("/:id", middleware.RequirePermission(dc.access, model.ModuleDepartments, model.ActionRead), dc.GetDepartment)
		departments.PUT("/:id", middleware.RequirePermission(dc.access, model.ModuleDepartments, model.ActionWrite), dc.UpdateDepartment)
		departments.DELETE("/:id", middleware.RequirePermission(dc.access, model.ModuleDepartments, model.ActionDelete), dc.DeleteDepartment)
	}
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", qms_errors.ErrInvalidDepartmentData)
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
		dept.CompanyID = scope.CompanyID
	}

	createdDept, err := dc.departmentService.CreateDepartment(c, dept, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrDepartmentConflict):
			util.RespondWithError(c, http.StatusConflict, "Department already exists", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create department", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdDept)
}

// GetDepartment endpoint
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	deptID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	dept, err := dc.departmentService.GetDepartment(c, scope, deptID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrDepartmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve department", err)
		}
		return
	}

	c.JSON(http.StatusOK, dept)
}

// UpdateDepartment endpoint
func (dc *DepartmentController) UpdateDepartment(c *gin.Context) {
	deptID := c.Param("id")
	var dept model.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", qms_errors.ErrInvalidDepartmentData)
		return
	}
	dept.ID = deptID
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

	updatedDept, err := dc.departmentService.UpdateDepartment(c, scope, dept, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrDepartmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update department", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedDept)
}

// DeleteDepartment endpoint
func (dc *DepartmentController) DeleteDepartment(c *gin.Context) {
	deptID := c.Param("id")
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

	if err := dc.departmentService.DeleteDepartment(c, scope, deptID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrDepartmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete department", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
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

	depts, err := dc.departmentService.ListDepartments(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	c.JSON(http.StatusOK, depts)
}
