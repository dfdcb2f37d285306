// service/access_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/audit"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/auth"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/dao"
	logger "github.com/idatumhimanshu-alt/syscomply-app-sub001/logging"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/util"
)

// Decision is the permission gate's verdict for one request.
type Decision struct {
	Allowed bool
	Bypass  bool
	Tier    model.RoleTier
}

// IAccessService answers whether an identity may perform an action on
// a module.
type IAccessService interface {
	CheckAccess(ctx context.Context, identity auth.Identity, moduleID string, action model.Action) (Decision, error)
}

// AccessService resolves the role tier once, then consults the flat
// (role, module, action) permission table. Every verdict is audited;
// audit failures never block the request.
type AccessService struct {
	roleDAO       *dao.RoleDAO
	permissionDAO *dao.PermissionDAO
	cacheService  *util.CacheService
	auditService  audit.Service
}

var _ IAccessService = &AccessService{}

func NewAccessService(roleDAO *dao.RoleDAO, permissionDAO *dao.PermissionDAO, cacheService *util.CacheService, auditService audit.Service) *AccessService {
	return &AccessService{
		roleDAO:       roleDAO,
		permissionDAO: permissionDAO,
		cacheService:  cacheService,
		auditService:  auditService,
	}
}

func (s *AccessService) CheckAccess(ctx context.Context, identity auth.Identity, moduleID string, action model.Action) (Decision, error) {
	role, err := s.resolveRole(ctx, identity.RoleID)
	if err != nil {
		return Decision{}, err
	}

	decision := Decision{Tier: role.Tier}
	if role.Tier == model.TierSystemSuperAdmin {
		decision.Allowed = true
		decision.Bypass = true
	} else {
		allowed, err := s.hasPermission(ctx, identity.RoleID, moduleID, action)
		if err != nil {
			return Decision{}, err
		}
		decision.Allowed = allowed
	}

	s.recordDecision(ctx, identity, moduleID, action, decision)
	return decision, nil
}

func (s *AccessService) resolveRole(ctx context.Context, roleID string) (*model.Role, error) {
	cached, err := s.cacheService.GetRole(ctx, roleID)
	if err == nil && cached != nil {
		return cached, nil
	}

	role, err := s.roleDAO.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetRole(ctx, *role); err != nil {
		logger.Warn("Failed to cache role", zap.Error(err), zap.String("roleID", roleID))
	}
	return role, nil
}

func (s *AccessService) hasPermission(ctx context.Context, roleID, moduleID string, action model.Action) (bool, error) {
	allowed, found, err := s.cacheService.GetPermissionCheck(ctx, roleID, moduleID, action)
	if err == nil && found {
		return allowed, nil
	}

	allowed, err = s.permissionDAO.HasPermission(ctx, roleID, moduleID, action)
	if err != nil {
		return false, err
	}
	if err := s.cacheService.SetPermissionCheck(ctx, roleID, moduleID, action, allowed); err != nil {
		logger.Warn("Failed to cache permission check", zap.Error(err), zap.String("roleID", roleID))
	}
	return allowed, nil
}

func (s *AccessService) recordDecision(ctx context.Context, identity auth.Identity, moduleID string, action model.Action, decision Decision) {
	err := s.auditService.LogDecision(ctx, audit.Decision{
		Timestamp: time.Now().UTC(),
		UserID:    identity.UserID,
		RoleID:    identity.RoleID,
		CompanyID: identity.CompanyID,
		ModuleID:  moduleID,
		Action:    string(action),
		Granted:   decision.Allowed,
		Bypass:    decision.Bypass,
	})
	if err != nil {
		logger.Warn("Failed to record permission decision",
			zap.Error(err),
			zap.String("userID", identity.UserID),
			zap.String("moduleID", moduleID))
	}
}
