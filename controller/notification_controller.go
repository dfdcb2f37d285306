// controller/notification_controller.go
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

// NotificationController serves a user's own notification feed.
// Notifications are created by the system (task assignment), never
// posted directly.
type NotificationController struct {
	notificationService service.INotificationService
	access              service.IAccessService
}

func NewNotificationController(notificationService service.INotificationService, access service.IAccessService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		access:              access,
	}
}

// RegisterRoutes registers the API routes
func (nc *NotificationController) RegisterRoutes(r *gin.RouterGroup) {
	notifications := r.Group("/notifications/:moduleId")
	{
		notifications.GET("", middleware.RequirePermission(nc.access, model.ModuleNotifications, model.ActionRead), nc.ListNotifications)
		notifications.PUT("/seen", middleware.RequirePermission(nc.access, model.ModuleNotifications, model.ActionWrite), nc.MarkAllSeen)
		notifications.DELETE("/:id", middleware.RequirePermission(nc.access, model.ModuleNotifications, model.ActionDelete), nc.DeleteNotification)
	}
}

// ListNotifications endpoint. Newest first; ?unseen=true narrows to
// unseen rows.
func (nc *NotificationController) ListNotifications(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
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
	unseenOnly := c.Query("unseen") == "true"

	notifications, err := nc.notificationService.ListNotifications(c, scope, identity.UserID, unseenOnly, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list notifications", err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAllSeen endpoint. Idempotent: repeating the call leaves the same
// seen-state and reports zero updates.
func (nc *NotificationController) MarkAllSeen(c *gin.Context) {
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

	updated, err := nc.notificationService.MarkAllSeen(c, scope, identity.UserID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to mark notifications seen", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// DeleteNotification endpoint
func (nc *NotificationController) DeleteNotification(c *gin.Context) {
	notificationID := c.Param("id")
	scope, err := auth.ScopeFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusForbidden, "Forbidden", err)
		return
	}

	if err := nc.notificationService.DeleteNotification(c, scope, notificationID); err != nil {
		if errors.Is(err, qms_errors.ErrNotificationNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Notification not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete notification", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
