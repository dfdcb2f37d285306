// dao/permission_dao.go
package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type PermissionDAO struct {
	DB *gorm.DB
}

func NewPermissionDAO(db *gorm.DB) *PermissionDAO {
	return &PermissionDAO{DB: db}
}

// HasPermission reports whether the exact (role, module, action)
// triple exists. No wildcard or hierarchy matching.
func (dao *PermissionDAO) HasPermission(ctx context.Context, roleID, moduleID string, action model.Action) (bool, error) {
	var count int64
	err := dao.DB.WithContext(ctx).Model(&model.Permission{}).
		Where("role_id = ? AND module_id = ? AND action = ?", roleID, moduleID, action).
		Count(&count).Error
	if err != nil {
		logger.Error("Error checking permission",
			zap.Error(err),
			zap.String("roleID", roleID),
			zap.String("moduleID", moduleID),
			zap.String("action", string(action)))
		return false, qms_errors.ErrDatabaseOperation
	}
	return count > 0, nil
}

func (dao *PermissionDAO) CreatePermission(ctx context.Context, permission model.Permission) (string, error) {
	if permission.ID == "" {
		permission.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&permission).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrPermissionConflict
		}
		logger.Error("Error creating permission", zap.Error(err), zap.String("roleID", permission.RoleID))
		return "", qms_errors.ErrDatabaseOperation
	}
	return permission.ID, nil
}

func (dao *PermissionDAO) GetPermission(ctx context.Context, permissionID string) (*model.Permission, error) {
	var permission model.Permission
	err := dao.DB.WithContext(ctx).First(&permission, "id = ?", permissionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrPermissionNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &permission, nil
}

func (dao *PermissionDAO) DeletePermission(ctx context.Context, permissionID string) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Permission{}, "id = ?", permissionID)
	if result.Error != nil {
		logger.Error("Error deleting permission", zap.Error(result.Error), zap.String("permissionID", permissionID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrPermissionNotFound
	}
	return nil
}

func (dao *PermissionDAO) ListPermissionsByRole(ctx context.Context, roleID string) ([]*model.Permission, error) {
	var permissions []*model.Permission
	err := dao.DB.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("module_id, action").
		Find(&permissions).Error
	if err != nil {
		logger.Error("Error listing permissions", zap.Error(err), zap.String("roleID", roleID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return permissions, nil
}

func (dao *PermissionDAO) ListPermissions(ctx context.Context, limit, offset int) ([]*model.Permission, error) {
	var permissions []*model.Permission
	err := dao.DB.WithContext(ctx).
		Order("role_id, module_id, action").
		Limit(limit).Offset(offset).
		Find(&permissions).Error
	if err != nil {
		logger.Error("Error listing permissions", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return permissions, nil
}
