// service/assignment_service.go
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

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, scope auth.Scope, assignment model.TaskAssignment, assignerID string) (*model.TaskAssignment, error)
	GetAssignment(ctx context.Context, scope auth.Scope, assignmentID string) (*model.TaskAssignment, error)
	ReassignAssignment(ctx context.Context, scope auth.Scope, assignmentID, assigneeID, assignerID string) (*model.TaskAssignment, error)
	DeleteAssignment(ctx context.Context, scope auth.Scope, assignmentID string, deleterID string) error
	ListAssignments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.TaskAssignment, error)
	ListAssignmentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.TaskAssignment, error)
}

// AssignmentService links tasks to assignees and notifies the target
// user on every assignment and reassignment. The notification write is
// not transactional with the assignment write: a failed notification
// leaves the assignment in place.
type AssignmentService struct {
	assignmentDAO   *dao.AssignmentDAO
	taskDAO         *dao.TaskDAO
	validationUtil  *util.ValidationUtil
	notificationSvc INotificationService
	eventBus        *util.EventBus
}

var _ IAssignmentService = &AssignmentService{}

func NewAssignmentService(assignmentDAO *dao.AssignmentDAO, taskDAO *dao.TaskDAO, validationUtil *util.ValidationUtil, notificationSvc INotificationService, eventBus *util.EventBus) *AssignmentService {
	return &AssignmentService{
		assignmentDAO:   assignmentDAO,
		taskDAO:         taskDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}
}

func (s *AssignmentService) CreateAssignment(ctx context.Context, scope auth.Scope, assignment model.TaskAssignment, assignerID string) (*model.TaskAssignment, error) {
	if err := s.validationUtil.ValidateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("invalid assignment: %w", err)
	}

	// The task anchors the assignment's tenant; a foreign task id
	// resolves as not found.
	task, err := s.taskDAO.GetTask(ctx, scope, assignment.TaskID)
	if err != nil {
		return nil, err
	}
	assignment.CompanyID = task.CompanyID
	assignment.AssignedBy = assignerID

	assignmentID, err := s.assignmentDAO.CreateAssignment(ctx, assignment)
	if err != nil {
		logger.Error("Error creating assignment", zap.Error(err), zap.String("assignerID", assignerID))
		return nil, err
	}
	assignment.ID = assignmentID

	s.notifyAssignee(ctx, assignment, task)
	s.eventBus.Publish(ctx, util.EventTaskAssigned, assignment)

	logger.Info("Task assigned",
		zap.String("assignmentID", assignmentID),
		zap.String("taskID", assignment.TaskID),
		zap.String("assigneeID", assignment.AssigneeID),
		zap.String("assignerID", assignerID))
	return &assignment, nil
}

func (s *AssignmentService) GetAssignment(ctx context.Context, scope auth.Scope, assignmentID string) (*model.TaskAssignment, error) {
	return s.assignmentDAO.GetAssignment(ctx, scope, assignmentID)
}

func (s *AssignmentService) ReassignAssignment(ctx context.Context, scope auth.Scope, assignmentID, assigneeID, assignerID string) (*model.TaskAssignment, error) {
	if assigneeID == "" {
		return nil, fmt.Errorf("invalid assignment: assignee ID cannot be empty")
	}

	assignment, err := s.assignmentDAO.ReassignAssignment(ctx, scope, assignmentID, assigneeID, assignerID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskDAO.GetTask(ctx, scope, assignment.TaskID)
	if err == nil {
		s.notifyAssignee(ctx, *assignment, task)
	}
	s.eventBus.Publish(ctx, util.EventTaskReassigned, *assignment)

	logger.Info("Task reassigned",
		zap.String("assignmentID", assignmentID),
		zap.String("assigneeID", assigneeID),
		zap.String("assignerID", assignerID))
	return assignment, nil
}

func (s *AssignmentService) DeleteAssignment(ctx context.Context, scope auth.Scope, assignmentID string, deleterID string) error {
	if err := s.assignmentDAO.DeleteAssignment(ctx, scope, assignmentID); err != nil {
		return err
	}
	logger.Info("Assignment deleted", zap.String("assignmentID", assignmentID), zap.String("deleterID", deleterID))
	return nil
}

func (s *AssignmentService) ListAssignments(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.TaskAssignment, error) {
	return s.assignmentDAO.ListAssignments(ctx, scope, limit, offset)
}

func (s *AssignmentService) ListAssignmentsByTask(ctx context.Context, scope auth.Scope, taskID string) ([]*model.TaskAssignment, error) {
	return s.assignmentDAO.ListAssignmentsByTask(ctx, scope, taskID)
}

func (s *AssignmentService) notifyAssignee(ctx context.Context, assignment model.TaskAssignment, task *model.Task) {
	_, err := s.notificationSvc.Dispatch(ctx, model.Notification{
		UserID:    assignment.AssigneeID,
		CompanyID: assignment.CompanyID,
		Message:   fmt.Sprintf("You have been assigned task: %s", task.Title),
		Link:      fmt.Sprintf("/tasks/%s", task.ID),
	})
	if err != nil {
		logger.Warn("Failed to notify assignee",
			zap.Error(err),
			zap.String("assigneeID", assignment.AssigneeID),
			zap.String("taskID", task.ID))
	}
}
