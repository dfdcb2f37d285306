// dao/notification_dao.go
package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	qms_errors "github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type NotificationDAO struct {
	DB *gorm.DB
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{DB: db}
}

func (dao *NotificationDAO) CreateNotification(ctx context.Context, notification model.Notification) (string, error) {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	notification.IsSeen = false

	if err := dao.DB.WithContext(ctx).Create(&notification).Error; err != nil {
		logger.Error("Error creating notification", zap.Error(err), zap.String("userID", notification.UserID))
		return "", qms_errors.ErrDatabaseOperation
	}
	return notification.ID, nil
}

// ListNotifications returns a user's notifications newest-first,
// optionally restricted to unseen rows.
func (dao *NotificationDAO) ListNotifications(ctx context.Context, scope auth.Scope, userID string, unseenOnly bool, limit, offset int) ([]*model.Notification, error) {
	q := scoped(dao.DB.WithContext(ctx).Model(&model.Notification{}), scope).
		Where("user_id = ?", userID)
	if unseenOnly {
		q = q.Where("is_seen = false")
	}

	var notifications []*model.Notification
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		logger.Error("Error listing notifications", zap.Error(err), zap.String("userID", userID))
		return nil, qms_errors.ErrDatabaseOperation
	}
	return notifications, nil
}

func (dao *NotificationDAO) GetNotification(ctx context.Context, scope auth.Scope, notificationID string) (*model.Notification, error) {
	var notification model.Notification
	err := scoped(dao.DB.WithContext(ctx), scope).First(&notification, "id = ?", notificationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, qms_errors.ErrNotificationNotFound
	} else if err != nil {
		return nil, qms_errors.ErrDatabaseOperation
	}
	return &notification, nil
}

// MarkAllSeen flips every unseen row for the user. Running it twice is
// a no-op the second time.
func (dao *NotificationDAO) MarkAllSeen(ctx context.Context, scope auth.Scope, userID string) (int64, error) {
	result := scoped(dao.DB.WithContext(ctx).Model(&model.Notification{}), scope).
		Where("user_id = ? AND is_seen = false", userID).
		Update("is_seen", true)
	if result.Error != nil {
		logger.Error("Error marking notifications seen", zap.Error(result.Error), zap.String("userID", userID))
		return 0, qms_errors.ErrDatabaseOperation
	}
	return result.RowsAffected, nil
}

func (dao *NotificationDAO) DeleteNotification(ctx context.Context, scope auth.Scope, notificationID string) error {
	result := scoped(dao.DB.WithContext(ctx), scope).Delete(&model.Notification{}, "id = ?", notificationID)
	if result.Error != nil {
		logger.Error("Error deleting notification", zap.Error(result.Error), zap.String("notificationID", notificationID))
		return qms_errors.ErrDatabaseOperation
	}
	if result.RowsAffected == 0 {
		return qms_errors.ErrNotificationNotFound
	}
	return nil
}
