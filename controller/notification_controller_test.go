// controller/notification_controller_test.go
package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/controller"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
)

type fakeNotificationService struct {
	service.INotificationService

	seen       map[string]bool
	listUserID string
	unseenOnly bool
}

func (f *fakeNotificationService) ListNotifications(ctx context.Context, scope auth.Scope, userID string, unseenOnly bool, limit, offset int) ([]*model.Notification, error) {
	f.listUserID = userID
	f.unseenOnly = unseenOnly
	return []*model.Notification{{ID: "n1", UserID: userID, Message: "task assigned"}}, nil
}

// MarkAllSeen mimics the real idempotent behavior: the first call for
// a user reports updates, repeats report zero.
func (f *fakeNotificationService) MarkAllSeen(ctx context.Context, scope auth.Scope, userID string) (int64, error) {
	if f.seen == nil {
		f.seen = make(map[string]bool)
	}
	if f.seen[userID] {
		return 0, nil
	}
	f.seen[userID] = true
	return 3, nil
}

func notificationRouter(notifications *fakeNotificationService, identity auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetIdentity(c, identity)
	})
	api := r.Group("/")
	controller.NewNotificationController(notifications, allowAll()).RegisterRoutes(api)
	return r
}

func TestNotificationController(t *testing.T) {
	identity := auth.Identity{UserID: "u1", RoleID: "r1", CompanyID: "co-a"}

	t.Run("ListNotifications_OwnFeedOnly", func(t *testing.T) {
		notifications := &fakeNotificationService{}
		router := notificationRouter(notifications, identity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/notifications/"+model.ModuleNotifications+"?unseen=true", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u1", notifications.listUserID)
		assert.True(t, notifications.unseenOnly)
	})

	t.Run("MarkAllSeen_Idempotent", func(t *testing.T) {
		notifications := &fakeNotificationService{}
		router := notificationRouter(notifications, identity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/notifications/"+model.ModuleNotifications+"/seen", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":3`)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("PUT", "/notifications/"+model.ModuleNotifications+"/seen", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"updated":0`)
	})
}
