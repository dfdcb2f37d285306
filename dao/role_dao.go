// dao/role_dao.go
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

type RoleDAO struct {
	DB *gorm.DB
}

func NewRoleDAO(db *gorm.DB) *RoleDAO {
	return &RoleDAO{DB: db}
}

func (dao *RoleDAO) CreateRole(ctx context.Context, role model.Role) (string, error) {
	if role.ID == "" {
		role.ID = uuid.New().String()
	}
	if role.Tier == "" {
		role.Tier = model.TierStandard
	}

	if err := dao.DB.WithContext(ctx).Create(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrRoleConflict
		}
		logger.Error("Error creating role", zap.Error(err), zap.String("roleName", role.Name))
		return "", qms_errors.ErrDatabaseOperation
	}
	return role.ID, nil
}

// GetRole is unscoped: the permission gate resolves roles before any
// tenant scope exists for the request.
func (dao *RoleDAO) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	var role model.Role
	err := dao.DB.WithContext(ctx).First(&role, "id = ?", roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrRoleNotFound
	} else if err != nil {
		logger.Error("Error retrieving role", zap.Error(err), zap.String("roleID", roleID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &role, nil
}

// GetScopedRole resolves a role visible to the caller: the tenant's
// own roles plus global (company-less) roles.
func (dao *RoleDAO) GetScopedRole(ctx context.Context, scope auth.Scope, roleID string) (*model.Role, error) {
	q := dao.DB.WithContext(ctx)
	if !scope.All {
		q = q.Where("company_id = ? OR company_id IS NULL", scope.CompanyID)
	}

	var role model.Role
	err := q.First(&role, "id = ?", roleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrRoleNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &role, nil
}

func (dao *RoleDAO) UpdateRole(ctx context.Context, scope auth.Scope, role model.Role) (*model.Role, error) {
	role.UpdatedAt = time.Now()
	q := dao.DB.WithContext(ctx).Model(&model.Role{})
	if !scope.All {
		q = q.Where("company_id = ?", scope.CompanyID)
	}
	result := q.Where("id = ?", role.ID).
		Updates(map[string]interface{}{
			"name":        role.Name,
			"description": role.Description,
			"updated_at":  role.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating role", zap.Error(result.Error), zap.String("roleID", role.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrRoleNotFound
	}
	return dao.GetScopedRole(ctx, scope, role.ID)
}

func (dao *RoleDAO) DeleteRole(ctx context.Context, scope auth.Scope, roleID string) error {
	q := dao.DB.WithContext(ctx)
	if !scope.All {
		q = q.Where("company_id = ?", scope.CompanyID)
	}
	result := q.Delete(&model.Role{}, "id = ? AND tier <> ?", roleID, model.TierSystemSuperAdmin)
	if result.Error != nil {
		logger.Error("Error deleting role", zap.Error(result.Error), zap.String("roleID", roleID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrRoleNotFound
	}
	return nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Role, error) {
	q := dao.DB.WithContext(ctx).Model(&model.Role{})
	if !scope.All {
		q = q.Where("company_id = ? OR company_id IS NULL", scope.CompanyID)
	}

	var roles []*model.Role
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&roles).Error
	if err != nil {
		logger.Error("Error listing roles", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return roles, nil
}
