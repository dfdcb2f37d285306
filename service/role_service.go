// service/role_service.go
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

type IRoleService interface {
	CreateRole(ctx context.Context, role model.Role, creatorID string) (*model.Role, error)
	GetRole(ctx context.Context, scope auth.Scope, roleID string) (*model.Role, error)
	UpdateRole(ctx context.Context, scope auth.Scope, role model.Role, updaterID string) (*model.Role, error)
	DeleteRole(ctx context.Context, scope auth.Scope, roleID string, deleterID string) error
	ListRoles(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Role, error)
}

type RoleService struct {
	roleDAO        *dao.RoleDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
}

var _ IRoleService = &RoleService{}

func NewRoleService(roleDAO *dao.RoleDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService) *RoleService {
	return &RoleService{
		roleDAO:        roleDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
	}
}

func (s *RoleService) CreateRole(ctx context.Context, role model.Role, creatorID string) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, fmt.Errorf("invalid role: %w", err)
	}
	// New roles are always standard tier; the system tier is seeded.
	role.Tier = model.TierStandard

	roleID, err := s.roleDAO.CreateRole(ctx, role)
	if err != nil {
		logger.Error("Error creating role", zap.Error(err), zap.String("creatorID", creatorID))
		return nil, err
	}
	role.ID = roleID

	logger.Info("Role created successfully", zap.String("roleID", roleID), zap.String("creatorID", creatorID))
	return &role, nil
}

func (s *RoleService) GetRole(ctx context.Context, scope auth.Scope, roleID string) (*model.Role, error) {
	return s.roleDAO.GetScopedRole(ctx, scope, roleID)
}

func (s *RoleService) UpdateRole(ctx context.Context, scope auth.Scope, role model.Role, updaterID string) (*model.Role, error) {
	if err := s.validationUtil.ValidateRole(role); err != nil {
		return nil, fmt.Errorf("invalid role: %w", err)
	}

	updated, err := s.roleDAO.UpdateRole(ctx, scope, role)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.DeleteRole(ctx, role.ID); err != nil {
		logger.Warn("Failed to invalidate role cache", zap.Error(err), zap.String("roleID", role.ID))
	}

	logger.Info("Role updated successfully", zap.String("roleID", role.ID), zap.String("updaterID", updaterID))
	return updated, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, scope auth.Scope, roleID string, deleterID string) error {
	if err := s.roleDAO.DeleteRole(ctx, scope, roleID); err != nil {
		return err
	}

	if err := s.cacheService.DeleteRole(ctx, roleID); err != nil {
		logger.Warn("Failed to invalidate role cache", zap.Error(err), zap.String("roleID", roleID))
	}
	if err := s.cacheService.InvalidateRolePermissions(ctx, roleID); err != nil {
		logger.Warn("Failed to invalidate permission cache", zap.Error(err), zap.String("roleID", roleID))
	}

	logger.Info("Role deleted successfully", zap.String("roleID", roleID), zap.String("deleterID", deleterID))
	return nil
}

func (s *RoleService) ListRoles(ctx context.Context, scope auth.Scope, limit, offset int) ([]*model.Role, error) {
	return s.roleDAO.ListRoles(ctx, scope, limit, offset)
}
