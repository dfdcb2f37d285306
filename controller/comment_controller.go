// controller/comment_controller.go
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

type CommentController struct {
	commentService service.ICommentService
	access         service.IAccessService
}

func NewCommentController(commentService service.ICommentService, access service.IAccessService) *CommentController {
	return &CommentController{
		commentService: commentService,
		access:         access,
	}
}

// RegisterRoutes registers the API routes
func (cc *CommentController) RegisterRoutes(r *gin.RouterGroup) {
	comments := r.Group("/comments/:moduleId")
	{
		comments.POST("", middleware.RequirePermission(cc.access, model.ModuleComments, model.ActionWrite), cc.CreateComment)
		comments.GET("/task/:taskId", middleware.RequirePermission(cc.access, model.ModuleComments, model.ActionRead), cc.ListCommentsByTask)
		comments.GET("/:id", middleware.RequirePermission(cc.access, model.ModuleComments, model.ActionRead), cc.GetComment)
		comments.PUT("/:id", middleware.RequirePermission(cc.access, model.ModuleComments, model.ActionWrite), cc.UpdateComment)
		comments.DELETE("/:id", middleware.RequirePermission(cc.access, model.ModuleComments, model.ActionDelete), cc.DeleteComment)
	}
}

// CreateComment endpoint
func (cc *CommentController) CreateComment(c *gin.Context) {
	var comment model.Comment
	if err := c.ShouldBindJSON(&comment); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid comment data", qms_errors.ErrInvalidCommentData)
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

	createdComment, err := cc.commentService.CreateComment(c, scope, comment, identity.UserID)
	if err != nil {
		switch {
		case errors.Is(err, qms_errors.ErrTaskNotFound):
			util.RespondWithError(c, http.StatusNotFound, "Task not found", err)
		case errors.Is(err, qms_errors.ErrDatabaseOperation):
			util.RespondWithError(c, http.StatusInternalServerError, "Database operation failed", err)
		default:
			util.RespondWithError(c, http.StatusBadRequest, "Failed to create comment", err)
		}
		return
	}

	c.JSON(http.StatusCreated, createdComment)
}

// GetComment endpoint
func (cc *CommentController) GetComment(c *gin.Context) {
	commentID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	comment, err := cc.commentService.GetComment(c, scope, commentID)
	if err != nil {
		if errors.Is(err, qms_errors.ErrCommentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Comment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve comment", err)
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}

// UpdateComment endpoint
func (cc *CommentController) UpdateComment(c *gin.Context) {
	commentID := c.Param("id")
	var updateRequest struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&updateRequest); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid comment data", qms_errors.ErrInvalidCommentData)
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

	updatedComment, err := cc.commentService.UpdateComment(c, scope, commentID, identity.UserID, updateRequest.Body)
	if err != nil {
		if errors.Is(err, qms_errors.ErrCommentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Comment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update comment", err)
		}
		return
	}

	c.JSON(http.StatusOK, updatedComment)
}

// DeleteComment endpoint
func (cc *CommentController) DeleteComment(c *gin.Context) {
	commentID := c.Param("id")
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

	if err := cc.commentService.DeleteComment(c, scope, commentID, identity.UserID); err != nil {
		if errors.Is(err, qms_errors.ErrCommentNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Comment not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete comment", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCommentsByTask endpoint
func (cc *CommentController) ListCommentsByTask(c *gin.Context) {
	taskID := c.Param("taskId")
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

	comments, err := cc.commentService.ListCommentsByTask(c, scope, taskID, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list comments", err)
		return
	}

	c.JSON(http.StatusOK, comments)
}
