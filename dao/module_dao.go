package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"

	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"

	"go.uber.org/zap"
)

// ModuleDAO manages the module registry. The known modules are seeded
// at startup; there is no tenant scoping because the registry is
// global.
type ModuleDAO struct {
	DB *gorm.DB
}

func NewModuleDAO(db *gorm.DB) *ModuleDAO {
	return &ModuleDAO{DB: db}
}

func (dao *ModuleDAO) CreateModule(ctx context.Context, module model.Module) (string, error) {
	if err := dao.DB.WithContext(ctx).Create(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrModuleConflict
		}
		logger.Error("Error creating module", zap.Error(err), zap.String("name", module.Name))
		return "", qms_errors.ErrDatabaseOperation
	}
	return module.ID, nil
}

func (dao *ModuleDAO) UpdateModule(ctx context.Context, module model.Module) (*model.Module, error) {
	result := dao.DB.WithContext(ctx).Model(&model.Module{}).
		Where("id = ?", module.ID).
		Update("name", module.Name)
	if result.Error != nil {
		logger.Error("Error updating module", zap.Error(result.Error), zap.String("moduleID", module.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrModuleNotFound
	}
	return dao.GetModule(ctx, module.ID)
}

func (dao *ModuleDAO) DeleteModule(ctx context.Context, moduleID string) error {
	result := dao.DB.WithContext(ctx).Delete(&model.Module{}, "id = ?", moduleID)
	if result.Error != nil {
		logger.Error("Error deleting module", zap.Error(result.Error), zap.String("moduleID", moduleID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrModuleNotFound
	}
	return nil
}

func (dao *ModuleDAO) GetModule(ctx context.Context, moduleID string) (*model.Module, error) {
	var module model.Module
	err := dao.DB.WithContext(ctx).First(&module, "id = ?", moduleID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrModuleNotFound
	} else if err != nil {
		logger.Error("Error retrieving module", zap.Error(err), zap.String("moduleID", moduleID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &module, nil
}

func (dao *ModuleDAO) ListModules(ctx context.Context) ([]*model.Module, error) {
	var modules []*model.Module
	err := dao.DB.WithContext(ctx).Order("name").Find(&modules).Error
	if err != nil {
		logger.Error("Error listing modules", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return modules, nil
}
