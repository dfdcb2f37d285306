// controller/assignment_controller.go
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

type AssignmentController struct {
	assignmentService service.IAssignmentService
	access            service.IAccessService
}

func NewAssignmentController(assignmentService service.IAssignmentService, access service.IAccessService) *AssignmentController {
	return &AssignmentController{
		assignmentService: assignmentService,
		access:            access,
	}
}

// RegisterRoutes registers the API routes
func (ac *AssignmentController) RegisterRoutes(r *gin.RouterGroup) {
	assignments := r.Group("/task-assignments/:moduleId")
	{
		assignments.POST("", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionWrite), ac.CreateAssignment)
		assignments.GET("", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionRead), ac.ListAssignments)
		assignments.GET("/task/:taskId", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionRead), ac.ListAssignmentsByTask)
		assignments.GET("/:id", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionRead), ac.GetAssignment)
		assignments.PUT("/:id", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionWrite), ac.ReassignAssignment)
		assignments.DELETE("/:id", middleware.RequirePermission(ac.access, model.ModuleTaskAssignments, model.ActionDelete), ac.DeleteAssignment)
	}
}

// CreateAssignment endpoint
func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	var assignment model.TaskAssignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid assignment data", qms_errors.ErrInvalidAssignmentData)
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

	createdAssignment, err := ac.assignmentService.CreateAssignment(c, scope, assignment, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrTaskNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		case errors.Is(err, qms_errors.ErrAssignmentConflict):
			util.RespondWithError(c, http.StatusConflict, "Assignment already exists", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create assignment", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdAssignment)
}

// GetAssignment endpoint
func (ac *AssignmentController) GetAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	assignment, err := ac.assignmentService.GetAssignment(c, scope, assignmentID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrAssignmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Assignment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve assignment", err)
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// ReassignAssignment endpoint
func (ac *AssignmentController) ReassignAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
	var reassignRequest struct {
		AssigneeID string `json:"assignee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&reassignRequest); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid assignment data", qms_errors.ErrInvalidAssignmentData)
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

	assignment, err := ac.assignmentService.ReassignAssignment(c, scope, assignmentID, reassignRequest.AssigneeID, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrAssignmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Assignment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to reassign task", err)
		}
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment endpoint
func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	assignmentID := c.Param("id")
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

	if err := ac.assignmentService.DeleteAssignment(c, scope, assignmentID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrAssignmentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Assignment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete assignment", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListAssignments endpoint
func (ac *AssignmentController) ListAssignments(c *gin.Context) {
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

	assignments, err := ac.assignmentService.ListAssignments(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list assignments", err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// ListAssignmentsByTask endpoint
func (ac *AssignmentController) ListAssignmentsByTask(c *gin.Context) {
	taskID := c.Param("taskId")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	assignments, err := ac.assignmentService.ListAssignmentsByTask(c, scope, taskID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list task assignments", err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}
