// dao/company_dao.go
package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type CompanyDAO struct {
	DB *gorm.DB
}

func NewCompanyDAO(db *gorm.DB) *CompanyDAO {
	return &CompanyDAO{DB: db}
}

func (dao *CompanyDAO) CreateCompany(ctx context.Context, company model.Company) (string, error) {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	company.Active = true

	if err := dao.DB.WithContext(ctx).Create(&company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrCompanyConflict
		}
		logger.Error("Error creating company", zap.Error(err), zap.String("name", company.Name))
		return "", qms_errors.ErrDatabaseOperation
	}
	return company.ID, nil
}

// GetCompany resolves a company visible to the caller. A tenant user
// can only ever see its own company row.
func (dao *CompanyDAO) GetCompany(ctx context.Context, scope auth.Scope, companyID string) (*model.Company, error) {
	if !scope.All && scope.CompanyID != companyID {
		return nil, qms_errors.ErrCompanyNotFound
	}

	var company model.Company
	err := dao.DB.WithContext(ctx).First(&company, "id = ?", companyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrCompanyNotFound
	} else if err != nil {
		logger.Error("Error retrieving company", zap.Error(err), zap.String("companyID", companyID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &company, nil
}

func (dao *CompanyDAO) UpdateCompany(ctx context.Context, scope auth.Scope, company model.Company) (*model.Company, error) {
	if !scope.All && scope.CompanyID != company.ID {
		return nil, qms_errors.ErrCompanyNotFound
	}

	company.UpdatedAt = time.Now()
	result := dao.DB.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", company.ID).
		Updates(map[string]interface{}{
			"name":       company.Name,
			"domain":     company.Domain,
			"industry":   company.Industry,
			"updated_at": company.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating company", zap.Error(result.Error), zap.String("companyID", company.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrCompanyNotFound
	}
	return dao.GetCompany(ctx, scope, company.ID)
}

// DeactivateCompany soft-deletes the tenant and deactivates its users.
func (dao *CompanyDAO) DeactivateCompany(ctx context.Context, companyID string) error {
	return dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Company{}).
			Where("id = ?", companyID).
			Update("active", false)
		if result.Error != nil {
			return qms_errors.ErrDatabaseOperation
		}
		if result.RowsAffected == 0 {
			return qms_errors.ErrCompanyNotFound
		}
		if err := tx.Delete(&model.Company{}, "id = ?", companyID).Error; err != nil {
			return qms_errors.ErrDatabaseOperation
		}
		if err := tx.Model(&model.User{}).
			Where("company_id = ?", companyID).
			Update("active", false).Error; err != nil {
			return qms_errors.ErrDatabaseOperation
		}
		return nil
	})
}

// ListCompanies crosses tenants only for an unscoped caller; a tenant
// caller sees a single-element list with its own company.
func (dao *CompanyDAO) ListCompanies(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Company, error) {
	q := dao.DB.WithContext(ctx).Model(&model.Company{})
	if !scope.All {
		q = q.Where("id = ?", scope.CompanyID)
	}

	var companies []*model.Company
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&companies).Error
	if err != nil {
		logger.Error("Error listing companies", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return companies, nil
}
