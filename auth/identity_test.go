package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestScopeFromContextStandardUser(t *testing.T) {
	c := testContext(t, "/tasks")
	SetIdentity(c, Identity{UserID: "u1", RoleID: "r1", CompanyID: "co1"})
	SetRoleTier(c, model.TierStandard)

	scope, err := ScopeFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "co1", scope.CompanyID)
	assert.False(t, scope.All)
}

func TestScopeFromContextStandardUserWithoutCompany(t *testing.T) {
	c := testContext(t, "/tasks")
	SetIdentity(c, Identity{UserID: "u1", RoleID: "r1"})
	SetRoleTier(c, model.TierStandard)

	_, err := ScopeFromContext(c)
	assert.ErrorIs(t, err, qms_errors.ErrForbidden)
}

func TestScopeFromContextSuperAdminCrossesTenants(t *testing.T) {
	c := testContext(t, "/companies")
	SetIdentity(c, Identity{UserID: "u1", RoleID: "r-admin"})
	SetRoleTier(c, model.TierSystemSuperAdmin)

	scope, err := ScopeFromContext(c)
	require.NoError(t, err)
	assert.True(t, scope.All)
}

func TestScopeFromContextSuperAdminTargetsCompany(t *testing.T) {
	c := testContext(t, "/tasks?company_id=co2")
	SetIdentity(c, Identity{UserID: "u1", RoleID: "r-admin"})
	SetRoleTier(c, model.TierSystemSuperAdmin)

	scope, err := ScopeFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "co2", scope.CompanyID)
	assert.False(t, scope.All)
}

func TestScopeFromContextRequiresIdentity(t *testing.T) {
	c := testContext(t, "/tasks")

	_, err := ScopeFromContext(c)
	assert.ErrorIs(t, err, qms_errors.ErrUnauthenticated)
}

func TestRoleTierDefaultsToStandard(t *testing.T) {
	c := testContext(t, "/tasks")
	assert.Equal(t, model.TierStandard, RoleTierFromContext(c))
}
