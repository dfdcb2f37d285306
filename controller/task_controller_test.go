// controller/task_controller_test.go
package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/controller"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/service"
)

// fakeAccessService grants or denies everything, recording each check.
type fakeAccessService struct {
	decision service.Decision
	calls    int
}

func (f *fakeAccessService) CheckAccess(ctx context.Context, identity auth.Identity, moduleID string, action model.Action) (service.Decision, error) {
	f.calls++
	return f.decision, nil
}

func allowAll() *fakeAccessService {
	return &fakeAccessService{decision: service.Decision{Allowed: true, Tier: model.TierStandard}}
}

func denyAll() *fakeAccessService {
	return &fakeAccessService{decision: service.Decision{Allowed: false, Tier: model.TierStandard}}
}

type fakeTaskService struct {
	service.ITaskService

	createCalls int
	created     *model.Task
	createErr   error
	getScope    auth.Scope
	getTask     *model.Task
	getErr      error
}

func (f *fakeTaskService) CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = &task
	return &task, nil
}

func (f *fakeTaskService) GetTask(ctx context.Context, scope auth.Scope, taskID string) (*model.Task, error) {
	f.getScope = scope
	return f.getTask, f.getErr
}

func taskRouter(tasks *fakeTaskService, access service.IAccessService, identity auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetIdentity(c, identity)
	})
	api := r.Group("/")
	controller.NewTaskController(tasks, access).RegisterRoutes(api)
	return r
}

func TestTaskController(t *testing.T) {
	identity := auth.Identity{UserID: "u1", RoleID: "r1", CompanyID: "co-a"}

	t.Run("CreateTask_Success", func(t *testing.T) {
		tasks := &fakeTaskService{}
		router := taskRouter(tasks, allowAll(), identity)

		body := strings.NewReader(`{"title":"Calibrate gauges"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/tasks/"+model.ModuleTasks, body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, tasks.createCalls)
		// The caller's tenant wins over whatever the body claims.
		assert.Equal(t, "co-a", tasks.created.CompanyID)
	})

	t.Run("CreateTask_WithoutWritePermission", func(t *testing.T) {
		tasks := &fakeTaskService{}
		router := taskRouter(tasks, denyAll(), identity)

		body := strings.NewReader(`{"title":"Calibrate gauges"}`)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/tasks/"+model.ModuleTasks, body)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, 0, tasks.createCalls, "denied request must not reach the service")
	})

	t.Run("CreateTask_InvalidBody", func(t *testing.T) {
		tasks := &fakeTaskService{}
		router := taskRouter(tasks, allowAll(), identity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/tasks/"+model.ModuleTasks, strings.NewReader("{not json"))
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, tasks.createCalls)
	})

	t.Run("GetTask_ForeignTenantIsNotFound", func(t *testing.T) {
		tasks := &fakeTaskService{getErr: qms_errors.ErrTaskNotFound}
		router := taskRouter(tasks, allowAll(), identity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks/"+model.ModuleTasks+"/task-owned-by-co-b", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "co-a", tasks.getScope.CompanyID)
		assert.False(t, tasks.getScope.All)
	})

	t.Run("GetTask_Success", func(t *testing.T) {
		tasks := &fakeTaskService{getTask: &model.Task{ID: "task-1", Title: "Calibrate gauges", CompanyID: "co-a"}}
		router := taskRouter(tasks, allowAll(), identity)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/tasks/"+model.ModuleTasks+"/task-1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "task-1")
	})
}
