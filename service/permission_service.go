// service/permission_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

type IPermissionService interface {
	GrantPermission(ctx context.Context, permission model.Permission, granterID string) (*model.Permission, error)
	GetPermission(ctx context.Context, permissionID string) (*model.Permission, error)
	RevokePermission(ctx context.Context, permissionID string, revokerID string) error
	ListPermissions(ctx context.Context, limit, offset int) ([]*model.Permission, error)
	ListPermissionsByRole(ctx context.Context, roleID string) ([]*model.Permission, error)
}

// PermissionService maintains the flat grant table. Adding a module
// means seeding rows here for every role that should reach it.
type PermissionService struct {
	permissionDAO  *dao.PermissionDAO
	moduleDAO      *dao.ModuleDAO
	validationUtil *util.ValidationUtil
	cacheService   *util.CacheService
	eventBus       *util.EventBus
}

var _ IPermissionService = &PermissionService{}

func NewPermissionService(permissionDAO *dao.PermissionDAO, moduleDAO *dao.ModuleDAO, validationUtil *util.ValidationUtil, cacheService *util.CacheService, eventBus *util.EventBus) *PermissionService {
	return &PermissionService{
		permissionDAO:  permissionDAO,
		moduleDAO:      moduleDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}
}

func (s *PermissionService) GrantPermission(ctx context.Context, permission model.Permission, granterID string) (*model.Permission, error) {
	if err := s.validationUtil.ValidatePermission(permission); err != nil {
		return nil, fmt.Errorf("invalid permission: %w", err)
	}

	// The module must exist in the registry before it can be granted.
	if _, err := s.moduleDAO.GetModule(ctx, permission.ModuleID); err != nil {
		return nil, err
	}

	permissionID, err := s.permissionDAO.CreatePermission(ctx, permission)
	if err != nil {
		logger.Error("Error granting permission", zap.Error(err), zap.String("granterID", granterID))
		return nil, err
	}
	permission.ID = permissionID

	s.invalidate(ctx, permission.RoleID)
	s.eventBus.Publish(ctx, util.EventPermissionChanged, permission)

	logger.Info("Permission granted",
		zap.String("permissionID", permissionID),
		zap.String("roleID", permission.RoleID),
		zap.String("moduleID", permission.ModuleID),
		zap.String("action", string(permission.Action)),
		zap.String("granterID", granterID))
	return &permission, nil
}

func (s *PermissionService) GetPermission(ctx context.Context, permissionID string) (*model.Permission, error) {
	return s.permissionDAO.GetPermission(ctx, permissionID)
}

func (s *PermissionService) RevokePermission(ctx context.Context, permissionID string, revokerID string) error {
	permission, err := s.permissionDAO.GetPermission(ctx, permissionID)
	if err != nil {
		return err
	}

	if err := s.permissionDAO.DeletePermission(ctx, permissionID); err != nil {
		return err
	}

	s.invalidate(ctx, permission.RoleID)
	s.eventBus.Publish(ctx, util.EventPermissionChanged, *permission)

	logger.Info("Permission revoked", zap.String("permissionID", permissionID), zap.String("revokerID", revokerID))
	return nil
}

func (s *PermissionService) ListPermissions(ctx context.Context, limit, offset int) ([]*model.Permission, error) {
	return s.permissionDAO.ListPermissions(ctx, limit, offset)
}

func (s *PermissionService) ListPermissionsByRole(ctx context.Context, roleID string) ([]*model.Permission, error) {
	return s.permissionDAO.ListPermissionsByRole(ctx, roleID)
}

func (s *PermissionService) invalidate(ctx context.Context, roleID string) {
	if err := s.cacheService.InvalidateRolePermissions(ctx, roleID); err != nil {
		logger.Warn("Failed to invalidate permission cache", zap.Error(err), zap.String("roleID", roleID))
	}
}
