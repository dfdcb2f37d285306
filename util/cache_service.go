// util/cache_service.go

package util

import (
	"context"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/db"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetRole(ctx context.Context, roleID string) (*model.Role, error) {
	return db.GetCachedRole(ctx, roleID)
}

func (c *CacheService) SetRole(ctx context.Context, role model.Role) error {
	return db.CacheRole(ctx, &role)
}

func (c *CacheService) DeleteRole(ctx context.Context, roleID string) error {
	return db.DeleteCachedRole(ctx, roleID)
}

func (c *CacheService) GetPermissionCheck(ctx context.Context, roleID, moduleID string, action model.Action) (allowed bool, found bool, err error) {
	return db.GetCachedPermissionCheck(ctx, roleID, moduleID, action)
}

func (c *CacheService) SetPermissionCheck(ctx context.Context, roleID, moduleID string, action model.Action, allowed bool) error {
	return db.CachePermissionCheck(ctx, roleID, moduleID, action, allowed)
}

func (c *CacheService) InvalidateRolePermissions(ctx context.Context, roleID string) error {
	return db.InvalidateRolePermissions(ctx, roleID)
}
