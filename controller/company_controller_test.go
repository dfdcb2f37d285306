// controller/company_controller_test.go
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

type fakeCompanyService struct {
	service.ICompanyService

	listScope auth.Scope
}

func (f *fakeCompanyService) ListCompanies(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Company, error) {
	f.listScope = scope
	if scope.All {
		return []*model.Company{{ID: "co-a"}, {ID: "co-b"}}, nil
	}
	return []*model.Company{{ID: scope.CompanyID}}, nil
}

func companyRouter(companies *fakeCompanyService, access service.IAccessService, identity auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		auth.SetIdentity(c, identity)
	})
	api := r.Group("/")
	controller.NewCompanyController(companies, access).RegisterRoutes(api)
	return r
}

func TestCompanyController(t *testing.T) {
	t.Run("ListCompanies_SuperAdminCrossesTenants", func(t *testing.T) {
		companies := &fakeCompanyService{}
		access := &fakeAccessService{decision: service.Decision{Allowed: true, Bypass: true, Tier: model.TierSystemSuperAdmin}}
		router := companyRouter(companies, access, auth.Identity{UserID: "root", RoleID: "r-admin"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/companies/"+model.ModuleCompanies, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, companies.listScope.All, "super admin list must not be tenant-filtered")
		assert.Contains(t, w.Body.String(), "co-a")
		assert.Contains(t, w.Body.String(), "co-b")
	})

	t.Run("ListCompanies_TenantSeesOnlyItself", func(t *testing.T) {
		companies := &fakeCompanyService{}
		router := companyRouter(companies, allowAll(), auth.Identity{UserID: "u1", RoleID: "r1", CompanyID: "co-a"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/companies/"+model.ModuleCompanies, nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, companies.listScope.All)
		assert.Equal(t, "co-a", companies.listScope.CompanyID)
		assert.NotContains(t, w.Body.String(), "co-b")
	})
}
