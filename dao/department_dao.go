// dao/department_dao.go
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

type DepartmentDAO struct {
	DB *gorm.DB
}

func NewDepartmentDAO(db *gorm.DB) *DepartmentDAO {
	return &DepartmentDAO{DB: db}
}

func (dao *DepartmentDAO) CreateDepartment(ctx context.Context, department model.Department) (string, error) {
	if department.ID == "" {
		department.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&department).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrDepartmentConflict
		}
		logger.Error("Error creating department", zap.Error(err), zap.String("name", department.Name))
		return "", qms_errors.ErrDatabaseOperation
	}
	return department.ID, nil
}

func (dao *DepartmentDAO) GetDepartment(ctx context.Context, scope auth.Scope, departmentID string) (*model.Department, error) {
	var department model.Department
	err := scoped(dao.DB.WithContext(ctx), scope).First(&department, "id = ?", departmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrDepartmentNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &department, nil
}

func (dao *DepartmentDAO) UpdateDepartment(ctx context.Context, scope auth.Scope, department model.Department) (*model.Department, error) {
	department.UpdatedAt = time.Now()
	result := scoped(dao.DB.WithContext(ctx).Model(&model.Department{}), scope).
		Where("id = ?", department.ID).
		Updates(map[string]interface{}{
			"name":       department.Name,
			"parent_id":  department.ParentID,
			"updated_at": department.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating department", zap.Error(result.Error), zap.String("departmentID", department.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrDepartmentNotFound
	}
	return dao.GetDepartment(ctx, scope, department.ID)
}

func (dao *DepartmentDAO) DeleteDepartment(ctx context.Context, scope auth.Scope, departmentID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Department{}, "id = ?", departmentID)
	if result.Error != nil {
		logger.Error("Error deleting department", zap.Error(result.Error), zap.String("departmentID", departmentID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrDepartmentNotFound
	}
	return nil
}

func (dao *DepartmentDAO) ListDepartments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Department, error) {
	var departments []*model.Department
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Department{}), scope).
		Order("name").Limit(limit).Offset(offset).Find(&departments).Error
	if err != nil {
		logger.Error("Error listing departments", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return departments, nil
}
