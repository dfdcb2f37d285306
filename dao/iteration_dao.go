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

type IterationDAO struct {
	DB *gorm.DB
}

func NewIterationDAO(db *gorm.DB) *IterationDAO {
	return &IterationDAO{DB: db}
}

func (dao *IterationDAO) CreateIteration(ctx context.Context, iteration model.Iteration) (string, error) {
	if iteration.ID == "" {
		iteration.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&iteration).Error; err != nil {
		logger.Error("Error creating iteration", zap.Error(err), zap.String("name", iteration.Name))
		return "", qms_errors.ErrDatabaseOperation
	}
	return iteration.ID, nil
}

func (dao *IterationDAO) GetIteration(ctx context.Context, scope auth.Scope, iterationID string) (*model.Iteration, error) {
	var iteration model.Iteration
	err := scoped(dao.DB.WithContext(ctx), scope).First(&iteration, "id = ?", iterationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrIterationNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &iteration, nil
}

func (dao *IterationDAO) UpdateIteration(ctx context.Context, scope auth.Scope, iteration model.Iteration) (*model.Iteration, error) {
	iteration.UpdatedAt = time.Now()
	result := scoped(dao.DB.WithContext(ctx).Model(&model.Iteration{}), scope).
		Where("id = ?", iteration.ID).
		Updates(map[string]interface{}{
			"name":       iteration.Name,
			"start_date": iteration.StartDate,
			"end_date":   iteration.EndDate,
			"updated_at": iteration.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating iteration", zap.Error(result.Error), zap.String("iterationID", iteration.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrIterationNotFound
	}
	return dao.GetIteration(ctx, scope, iteration.ID)
}

func (dao *IterationDAO) DeleteIteration(ctx context.Context, scope auth.Scope, iterationID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Iteration{}, "id = ?", iterationID)
	if result.Error != nil {
		logger.Error("Error deleting iteration", zap.Error(result.Error), zap.String("iterationID", iterationID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrIterationNotFound
	}
	return nil
}

func (dao *IterationDAO) ListIterations(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Iteration, error) {
	var iterations []*model.Iteration
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Iteration{}), scope).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&iterations).Error
	if err != nil {
		logger.Error("Error listing iterations", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return iterations, nil
}
