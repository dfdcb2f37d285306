// service/comment_service.go
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

type ICommentService interface {
	CreateComment(ctx context.Context, scope auth.Scope, comment model.Comment, authorID string) (*model.Comment, error)
	GetComment(ctx context.Context, scope auth.Scope, commentID string) (*model.Comment, error)
	UpdateComment(ctx context.Context, scope auth.Scope, commentID, authorID, body string) (*model.Comment, error)
	DeleteComment(ctx context.Context, scope auth.Scope, commentID string, deleterID string) error
	ListCommentsByTask(ctx context.Context, scope auth.Scope, taskID string, limit, offset int) ([]*model.Comment, error)
}

type CommentService struct {
	commentDAO     *dao.CommentDAO
	taskDAO        *dao.TaskDAO
	validationUtil *util.ValidationUtil
}

var _ ICommentService = &CommentService{}

func NewCommentService(commentDAO *dao.CommentDAO, taskDAO *dao.TaskDAO, validationUtil *util.ValidationUtil) *CommentService {
	return &CommentService{
		commentDAO:     commentDAO,
		taskDAO:        taskDAO,
		validationUtil: validationUtil,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, scope auth.Scope, comment model.Comment, authorID string) (*model.Comment, error) {
	comment.UserID = authorID
	if err := s.validationUtil.ValidateComment(comment); err != nil {
		return nil, fmt.Errorf("invalid comment: %w", err)
	}

	task, err := s.taskDAO.GetTask(ctx, scope, comment.TaskID)
	if err != nil {
		return nil, err
	}
	comment.CompanyID = task.CompanyID

	commentID, err := s.commentDAO.CreateComment(ctx, comment)
	if err != nil {
		logger.Error("Error creating comment", zap.Error(err), zap.String("authorID", authorID))
		return nil, err
	}
	comment.ID = commentID

	logger.Info("Comment created", zap.String("commentID", commentID), zap.String("taskID", comment.TaskID))
	return &comment, nil
}

func (s *CommentService) GetComment(ctx context.Context, scope auth.Scope, commentID string) (*model.Comment, error) {
	return s.commentDAO.GetComment(ctx, scope, commentID)
}

// UpdateComment only touches rows authored by the caller; editing
// someone else's comment resolves as not found.
func (s *CommentService) UpdateComment(ctx context.Context, scope auth.Scope, commentID, authorID, body string) (*model.Comment, error) {
	if body == "" {
		return nil, fmt.Errorf("invalid comment: body cannot be empty")
	}

	comment, err := s.commentDAO.UpdateComment(ctx, scope, model.Comment{ID: commentID, UserID: authorID, Body: body})
	if err != nil {
		return nil, err
	}
	logger.Info("Comment updated", zap.String("commentID", commentID), zap.String("authorID", authorID))
	return comment, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, scope auth.Scope, commentID string, deleterID string) error {
	if err := s.commentDAO.DeleteComment(ctx, scope, commentID); err != nil {
		return err
	}
	logger.Info("Comment deleted", zap.String("commentID", commentID), zap.String("deleterID", deleterID))
	return nil
}

func (s *CommentService) ListCommentsByTask(ctx context.Context, scope auth.Scope, taskID string, limit, offset int) ([]*model.Comment, error) {
	return s.commentDAO.ListCommentsByTask(ctx, scope, taskID, limit, offset)
}
