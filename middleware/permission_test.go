package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
)

type fakeAccessService struct {
	decision service.Decision
	err      error
	calls    int
}

func (f *fakeAccessService) CheckAccess(ctx context.Context, identity auth.Identity, moduleID string, action model.Action) (service.Decision, error) {
	f.calls++
	return f.decision, f.err
}

func permissionTestRouter(access service.IAccessService, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetIdentity(c, auth.Identity{UserID: "u1", RoleID: "r1", CompanyID: "co1"})
	})
	r.POST("/tasks", RequirePermission(access, model.ModuleTasks, model.ActionWrite), func(c *gin.Context) {
		*handlerRan = true
		c.Status(http.StatusCreated)
	})
	return r
}

func TestRequirePermissionDeniesMissingTriple(t *testing.T) {
	access := &fakeAccessService{decision: service.Decision{Allowed: false, Tier: model.TierStandard}}
	handlerRan := false
	r := permissionTestRouter(access, &handlerRan)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/tasks", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan, "handler must not run on a denied request")
	assert.Equal(t, 1, access.calls)
}

func TestRequirePermissionAllowsGrantedTriple(t *testing.T) {
	access := &fakeAccessService{decision: service.Decision{Allowed: true, Tier: model.TierStandard}}
	handlerRan := false
	r := permissionTestRouter(access, &handlerRan)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/tasks", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
}

func TestRequirePermissionAllowsSuperAdminBypass(t *testing.T) {
	access := &fakeAccessService{decision: service.Decision{Allowed: true, Bypass: true, Tier: model.TierSystemSuperAdmin}}
	handlerRan := false

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetIdentity(c, auth.Identity{UserID: "u1", RoleID: "r-admin"})
	})
	r.POST("/tasks", RequirePermission(access, model.ModuleTasks, model.ActionWrite), func(c *gin.Context) {
		handlerRan = true
		assert.Equal(t, model.TierSystemSuperAdmin, auth.RoleTierFromContext(c))
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/tasks", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, handlerRan)
}

func TestRequirePermissionFailsClosedOnLookupError(t *testing.T) {
	access := &fakeAccessService{err: errors.New("store unavailable")}
	handlerRan := false
	r := permissionTestRouter(access, &handlerRan)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/tasks", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, handlerRan)
}

func TestRequirePermissionRequiresIdentity(t *testing.T) {
	access := &fakeAccessService{decision: service.Decision{Allowed: true}}
	handlerRan := false

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/tasks", RequirePermission(access, model.ModuleTasks, model.ActionWrite), func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/tasks", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, handlerRan)
	assert.Equal(t, 0, access.calls)
}
