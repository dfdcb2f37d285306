// service/notification_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/realtime"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

// RealtimePublisher delivers events to live client connections.
// Satisfied by *realtime.Hub.
type RealtimePublisher interface {
	Publish(userID, eventType string, payload interface{}) int
}

type INotificationService interface {
	Dispatch(ctx context.Context, notification model.Notification) (*model.Notification, error)
	ListNotifications(ctx context.Context, scope auth.Scope, userID string, unseenOnly bool, limit, offset int) ([]*model.Notification, error)
	MarkAllSeen(ctx context.Context, scope auth.Scope, userID string) (int64, error)
	DeleteNotification(ctx context.Context, scope auth.Scope, notificationID string) error
}

// NotificationService persists notification rows and pushes them to
// connected clients. The push is fire-and-forget: a failed or dropped
// delivery leaves the row in place for the pull endpoints.
type NotificationService struct {
	notificationDAO *dao.NotificationDAO
	validationUtil  *util.ValidationUtil
	hub             RealtimePublisher
}

var _ INotificationService = &NotificationService{}

func NewNotificationService(notificationDAO *dao.NotificationDAO, validationUtil *util.ValidationUtil, hub RealtimePublisher) *NotificationService {
	return &NotificationService{
		notificationDAO: notificationDAO,
		validationUtil:  validationUtil,
		hub:             hub,
	}
}

func (s *NotificationService) Dispatch(ctx context.Context, notification model.Notification) (*model.Notification, error) {
	if err := s.validationUtil.ValidateNotification(notification); err != nil {
		return nil, fmt.Errorf("invalid notification: %w", err)
	}

	notificationID, err := s.notificationDAO.CreateNotification(ctx, notification)
	if err != nil {
		logger.Error("Error creating notification", zap.Error(err), zap.String("userID", notification.UserID))
		return nil, err
	}
	notification.ID = notificationID

	delivered := s.hub.Publish(notification.UserID, realtime.EventNewNotification, notification)
	logger.Info("Notification dispatched",
		zap.String("notificationID", notificationID),
		zap.String("userID", notification.UserID),
		zap.Int("liveDeliveries", delivered))

	return &notification, nil
}

func (s *NotificationService) ListNotifications(ctx context.Context, scope auth.Scope, userID string, unseenOnly bool, limit, offset int) ([]*model.Notification, error) {
	return s.notificationDAO.ListNotifications(ctx, scope, userID, unseenOnly, limit, offset)
}

func (s *NotificationService) MarkAllSeen(ctx context.Context, scope auth.Scope, userID string) (int64, error) {
	updated, err := s.notificationDAO.MarkAllSeen(ctx, scope, userID)
	if err != nil {
		return 0, err
	}
	logger.Info("Notifications marked seen", zap.String("userID", userID), zap.Int64("updated", updated))
	return updated, nil
}

func (s *NotificationService) DeleteNotification(ctx context.Context, scope auth.Scope, notificationID string) error {
	return s.notificationDAO.DeleteNotification(ctx, scope, notificationID)
}
