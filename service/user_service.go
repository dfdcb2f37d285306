// service/user_service.go
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

type IUserService interface {
	CreateUser(ctx context.Context, user model.User, password string, creatorID string) (*model.User, error)
	GetUser(ctx context.Context, scope auth.Scope, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, scope auth.Scope, user model.User, updaterID string) (*model.User, error)
	DeleteUser(ctx context.Context, scope auth.Scope, userID string, deleterID string) error
	ListUsers(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.User, error)
	SearchUsers(ctx context.Context, scope auth.Scope, criteria model.UserSearchCriteria) ([]*model.User, error)
}

type UserService struct {
	userDAO        *dao.UserDAO
	validationUtil *util.ValidationUtil
}

var _ IUserService = &UserService{}

func NewUserService(userDAO *dao.UserDAO, validationUtil *util.ValidationUtil) *UserService {
	return &UserService{
		userDAO:        userDAO,
		validationUtil: validationUtil,
	}
}

func (s *UserService) CreateUser(ctx context.Context, user model.User, password string, creatorID string) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid user: password cannot be empty")
	}

	hash, err := HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}
	user.PasswordHash = hash

	userID, err := s.userDAO.CreateUser(ctx, user)
	if err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	user.ID = userID

	logger.Info("User created successfully", zap.String("userID", userID), zap.String("creatorID", creatorID))
	return &user, nil
}

func (s *UserService) GetUser(ctx context.Context, scope auth.Scope, userID string) (*model.User, error) {
	return s.userDAO.GetUser(ctx, scope, userID)
}

func (s *UserService) UpdateUser(ctx context.Context, scope auth.Scope, user model.User, updaterID string) (*model.User, error) {
	if err := s.validationUtil.ValidateUser(user); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	updated, err := s.userDAO.UpdateUser(ctx, scope, user)
	if err != nil {
		return nil, err
	}

	logger.Info("User updated successfully", zap.String("userID", user.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *UserService) DeleteUser(ctx context.Context, scope auth.Scope, userID string, deleterID string) error {
	if err := s.userDAO.DeleteUser(ctx, scope, userID); err != nil {
		return err
	}
	logger.Info("User deactivated", zap.String("userID", userID), zap.String("deleterID", deleterID))
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.User, error) {
	return s.userDAO.ListUsers(ctx, scope, limit, offset)
}

func (s *UserService) SearchUsers(ctx context.Context, scope auth.Scope, criteria model.UserSearchCriteria) ([]*model.User, error) {
	return s.userDAO.SearchUsers(ctx, scope, criteria)
}
