// dao/task_dao.go
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

type TaskDAO struct {
	DB *gorm.DB
}

func NewTaskDAO(db *gorm.DB) *TaskDAO {
	return &TaskDAO{DB: db}
}

func (dao *TaskDAO) CreateTask(ctx context.Context, task model.Task) (string, error) {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	if task.Status == "" {
		task.Status = model.TaskStatusOpen
	}

	if err := dao.DB.WithContext(ctx).Create(&task).Error; err != nil {
		logger.Error("Error creating task", zap.Error(err), zap.String("title", task.Title))
		return "", qms_errors.ErrDatabaseOperation
	}
	return task.ID, nil
}

// GetTask returns ErrTaskNotFound for rows outside the caller's
// tenant; foreign data must be indistinguishable from absent data.
func (dao *TaskDAO) GetTask(ctx context.Context, scope auth.Scope, taskID string) (*model.Task, error) {
	var task model.Task
	err := scoped(dao.DB.WithContext(ctx), scope).First(&task, "id = ?", taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrTaskNotFound
	} else if err != nil {
		logger.Error("Error retrieving task", zap.Error(err), zap.String("taskID", taskID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &task, nil
}

func (dao *TaskDAO) UpdateTask(ctx context.Context, scope auth.Scope, task model.Task) (*model.Task, error) {
	task.UpdatedAt = time.Now()
	result := scoped(dao.DB.WithContext(ctx).Model(&model.Task{}), scope).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"title":        task.Title,
			"description":  task.Description,
			"status":       task.Status,
			"iteration_id": task.IterationID,
			"due_date":     task.DueDate,
			"updated_at":   task.UpdatedAt,
		})
	if result.Error != nil {
		logger.Error("Error updating task", zap.Error(result.Error), zap.String("taskID", task.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrTaskNotFound
	}
	return dao.GetTask(ctx, scope, task.ID)
}

func (dao *TaskDAO) DeleteTask(ctx context.Context, scope auth.Scope, taskID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Task{}, "id = ?", taskID)
	if result.Error != nil {
		logger.Error("Error deleting task", zap.Error(result.Error), zap.String("taskID", taskID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrTaskNotFound
	}
	return nil
}

func (dao *TaskDAO) ListTasks(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Task, error) {
	var tasks []*model.Task
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Task{}), scope).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&tasks).Error
	if err != nil {
		logger.Error("Error listing tasks", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return tasks, nil
}

func (dao *TaskDAO) SearchTasks(ctx context.Context, scope auth.Scope, criteria model.TaskSearchCriteria) ([]*model.Task, error) {
	q := scoped(dao.DB.WithContext(ctx).Model(&model.Task{}), scope)
	if criteria.Status != "" {
		q = q.Where("status = ?", criteria.Status)
	}
	if criteria.IterationID != "" {
		q = q.Where("iteration_id = ?", criteria.IterationID)
	}
	if criteria.AssigneeID != "" {
		q = q.Joins("JOIN task_assignments ON task_assignments.task_id = tasks.id").
			Where("task_assignments.assignee_id = ?", criteria.AssigneeID)
	}
	if criteria.Limit <= 0 {
		criteria.Limit = 20
	}

	var tasks []*model.Task
	err := q.Order("tasks.created_at DESC").Limit(criteria.Limit).Offset(criteria.Offset).Find(&tasks).Error
	if err != nil {
		logger.Error("Error searching tasks", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return tasks, nil
}
