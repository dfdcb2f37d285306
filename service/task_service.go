// service/task_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type ITaskService interface {
	CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error)
	GetTask(ctx context.Context, scope auth.Scope, taskID string) (*model.Task, error)
	UpdateTask(ctx context.Context, scope auth.Scope, task model.Task, updaterID string) (*model.Task, error)
	DeleteTask(ctx context.Context, scope auth.Scope, taskID string, deleterID string) error
	ListTasks(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Task, error)
	SearchTasks(ctx context.Context, scope auth.Scope, criteria model.TaskSearchCriteria) ([]*model.Task, error)
}

type TaskService struct {
	taskDAO        *dao.TaskDAO
	validationUtil *util.ValidationUtil
}

var _ ITaskService = &TaskService{}

func NewTaskService(taskDAO *dao.TaskDAO, validationUtil *util.ValidationUtil) *TaskService {
	return &TaskService{
		taskDAO:        taskDAO,
		validationUtil: validationUtil,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, task model.Task, creatorID string) (*model.Task, error) {
	if err := s.validationUtil.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}
	task.CreatedBy = creatorID

	taskID, err := s.taskDAO.CreateTask(ctx, task)
	if err != nil {
		logger.Error("Error creating task", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	task.ID = taskID

	logger.Info("Task created successfully", zap.String("taskID", taskID), zap.String("creatorID", creatorID))
	return &task, nil
}

func (s *TaskService) GetTask(ctx context.Context, scope auth.Scope, taskID string) (*model.Task, error) {
	return s.taskDAO.GetTask(ctx, scope, taskID)
}

func (s *TaskService) UpdateTask(ctx context.Context, scope auth.Scope, task model.Task, updaterID string) (*model.Task, error) {
	if err := s.validationUtil.ValidateTask(task); err != nil {
		return nil, fmt.Errorf("invalid task: %w", err)
	}

	updated, err := s.taskDAO.UpdateTask(ctx, scope, task)
	if err != nil {
		return nil, err
	}

	logger.Info("Task updated successfully", zap.String("taskID", task.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, scope auth.Scope, taskID string, deleterID string) error {
	if err := s.taskDAO.DeleteTask(ctx, scope, taskID); err != nil {
		return err
	}
	logger.Info("Task deleted", zap.String("taskID", taskID), zap.String("deleterID", deleterID))
	return nil
}

func (s *TaskService) ListTasks(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Task, error) {
	return s.taskDAO.ListTasks(ctx, scope, limit, offset)
}

func (s *TaskService) SearchTasks(ctx context.Context, scope auth.Scope, criteria model.TaskSearchCriteria) ([]*model.Task, error) {
	return s.taskDAO.SearchTasks(ctx, scope, criteria)
}
