// controller/task_controller.go
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

type TaskController struct {
	taskService service.ITaskService
	access      service.IAccessService
}

func NewTaskController(taskService service.ITaskService, access service.IAccessService) *TaskController {
	return &TaskController{
		taskService: taskService,
		access:      access,
	}
}

// RegisterRoutes registers the API routes
func (tc *TaskController) RegisterRoutes(r *gin.RouterGroup) {
	tasks := r.Group("/tasks/:moduleId")
	{
		tasks.POST("", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionWrite), tc.CreateTask)
		tasks.GET("", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionRead), tc.ListTasks)
		tasks.POST("/search", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionRead), tc.SearchTasks)
		tasks.GET("/:id", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionRead), tc.GetTask)
		tasks.PUT("/:id", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionWrite), tc.UpdateTask)
		tasks.DELETE("/:id", middleware.RequirePermission(tc.access, model.ModuleTasks, model.ActionDelete), tc.DeleteTask)
	}
}

// CreateTask endpoint
func (tc *TaskController) CreateTask(c *gin.Context) {
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid task data", qms_errors.ErrInvalidTaskData)
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
		task.CompanyID = scope.CompanyID
	}

	createdTask, err := tc.taskService.CreateTask(c, task, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrTaskConflict):
			util.RespondWithError(c, http.StatusConflict, "Task already exists", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create task", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdTask)
}

// GetTask endpoint
func (tc *TaskController) GetTask(c *gin.Context) {
	taskID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	task, err := tc.taskService.GetTask(c, scope, taskID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrTaskNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		}
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask endpoint
func (tc *TaskController) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	var task model.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid task data", qms_errors.ErrInvalidTaskData)
		return
	}
	task.ID = taskID
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

	updatedTask, err := tc.taskService.UpdateTask(c, scope, task, identity.UserID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrTaskNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update task", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedTask)
}

// DeleteTask endpoint
func (tc *TaskController) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
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

	if err := tc.taskService.DeleteTask(c, scope, taskID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrTaskNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete task", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTasks endpoint
func (tc *TaskController) ListTasks(c *gin.Context) {
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

	tasks, err := tc.taskService.ListTasks(c, scope, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// SearchTasks endpoint
func (tc *TaskController) SearchTasks(c *gin.Context) {
	var criteria model.TaskSearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid search criteria", err)
		return
	}
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	tasks, err := tc.taskService.SearchTasks(c, scope, criteria)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search tasks", err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
