// dao/assignment_dao.go
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

type AssignmentDAO struct {
	DB *gorm.DB
}

func NewAssignmentDAO(db *gorm.DB) *AssignmentDAO {
	return &AssignmentDAO{DB: db}
}

func (dao *AssignmentDAO) CreateAssignment(ctx context.Context, assignment model.TaskAssignment) (string, error) {
	if assignment.ID == "" {
		assignment.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&assignment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", qms_errors.ErrAssignmentConflict
		}
		logger.Error("Error creating assignment", zap.Error(err), zap.String("taskID", assignment.TaskID))
		return "", qms_errors.ErrDatabaseOperation
	}
	return assignment.ID, nil
}

func (dao *AssignmentDAO) GetAssignment(ctx context.Context, scope auth.Scope, assignmentID string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := scoped(dao.DB.WithContext(ctx), scope).First(&assignment, "id = ?", assignmentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrAssignmentNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &assignment, nil
}

// ReassignAssignment moves an assignment to a new assignee.
func (dao *AssignmentDAO) ReassignAssignment(ctx context.Context, scope auth.Scope, assignmentID, assigneeID, assignedBy string) (*model.TaskAssignment, error) {
	result := scoped(dao.DB.WithContext(ctx).Model(&model.TaskAssignment{}), scope).
		Where("id = ?", assignmentID).
		Updates(map[string]interface{}{
			"assignee_id": assigneeID,
			"assigned_by": assignedBy,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		logger.Error("Error reassigning task", zap.Error(result.Error), zap.String("assignmentID", assignmentID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrAssignmentNotFound
	}
	return dao.GetAssignment(ctx, scope, assignmentID)
}

func (dao *AssignmentDAO) DeleteAssignment(ctx context.Context, scope auth.Scope, assignmentID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.TaskAssignment{}, "id = ?", assignmentID)
	if result.Error != nil {
		logger.Error("Error deleting assignment", zap.Error(result.Error), zap.String("assignmentID", assignmentID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrAssignmentNotFound
	}
	return nil
}

func (dao *AssignmentDAO) ListAssignments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.TaskAssignment, error) {
	var assignments []*model.TaskAssignment
	err := scoped(dao.DB.WithContext(ctx).Model(&model.TaskAssignment{}), scope).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	if err != nil {
		logger.Error("Error listing assignments", zap.Error(err))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return assignments, nil
}

func (dao *AssignmentDAO) ListAssignmentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.TaskAssignment, error) {
	var assignments []*model.TaskAssignment
	err := scoped(dao.DB.WithContext(ctx).Model(&model.TaskAssignment{}), scope).
		Where("task_id = ?", taskID).
		Order("created_at DESC").Find(&assignments).Error
	if err != nil {
		logger.Error("Error listing assignments for task", zap.Error(err), zap.String("taskID", taskID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return assignments, nil
}
