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

type CommentDAO struct {
	DB *gorm.DB
}

func NewCommentDAO(db *gorm.DB) *CommentDAO {
	return &CommentDAO{DB: db}
}

func (dao *CommentDAO) CreateComment(ctx context.Context, comment model.Comment) (string, error) {
	if comment.ID == "" {
		comment.ID = uuid.New().String()
	}

	if err := dao.DB.WithContext(ctx).Create(&comment).Error; err != nil {
		logger.Error("Error creating comment", zap.Error(err), zap.String("taskID", comment.TaskID))
		return "", qms_errors.ErrDatabaseOperation
	}
	return comment.ID, nil
}

func (dao *CommentDAO) GetComment(ctx context.Context, scope auth.Scope, commentID string) (*model.Comment, error) {
	var comment model.Comment
	err := scoped(dao.DB.WithContext(ctx), scope).First(&comment, "id = ?", commentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrCommentNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &comment, nil
}

func (dao *CommentDAO) UpdateComment(ctx context.Context, scope auth.Scope, comment model.Comment) (*model.Comment, error) {
	result := scoped(dao.DB.WithContext(ctx).Model(&model.Comment{}), scope).
		Where("id = ? AND user_id = ?", comment.ID, comment.UserID).
		Updates(map[string]interface{}{
			"body":       comment.Body,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		logger.Error("Error updating comment", zap.Error(result.Error), zap.String("commentID", comment.ID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return nil, qms_errors.ErrCommentNotFound
	}
	return dao.GetComment(ctx, scope, comment.ID)
}

func (dao *CommentDAO) DeleteComment(ctx context.Context, scope auth.Scope, commentID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Comment{}, "id = ?", commentID)
	if result.Error != nil {
		logger.Error("Error deleting comment", zap.Error(result.Error), zap.String("commentID", commentID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrCommentNotFound
	}
	return nil
}

func (dao *CommentDAO) ListCommentsByTask(ctx context.Context, scope auth.Scope, taskID string, limit, offset int) ([]*model.Comment, error) {
	var comments []*model.Comment
	err := scoped(dao.DB.WithContext(ctx).Model(&model.Comment{}), scope).
		Where("task_id = ?", taskID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&comments).Error
	if err != nil {
		logger.Error("Error listing comments", zap.Error(err), zap.String("taskID", taskID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return comments, nil
}
