// dao/dao.go
package dao

import (
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
)

// scoped applies the tenant filter to a query. Every read and write
// path on a company-owned entity must go through this; the only scope
// without a filter is the System Super Admin's.
func scoped(q *gorm.DB, scope auth.Scope) *gorm.DB {
	if scope.All {
		return q
	}
	return q.Where("company_id = ?", scope.CompanyID)
}
