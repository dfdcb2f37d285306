// auth/identity.go
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/idatumhimanshu-alt/syscomply-app-sub001/errors"
	"github.com/idatumhimanshu-alt/syscomply-app-sub001/model"
)

const (
	identityKey = "identity"
	tierKey     = "roleTier"
)

// Identity is the decoded bearer credential attached to every
// authenticated request.
type Identity struct {
	UserID    string
	RoleID    string
	CompanyID string
}

// Scope is the tenant filter a request is allowed to see. All is set
// only for the System Super Admin tier.
type Scope struct {
	CompanyID string
	All       bool
}

// SetIdentity stores the identity on the request context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(identityKey, id)
}

// IdentityFromContext returns the identity the auth gate attached.
func IdentityFromContext(c *gin.Context) (Identity, error) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, errors.ErrUnauthenticated
	}
	id, ok := v.(Identity)
	if !ok {
		return Identity{}, errors.ErrUnauthenticated
	}
	return id, nil
}

// SetRoleTier stores the tier resolved by the permission gate.
func SetRoleTier(c *gin.Context, tier model.RoleTier) {
	c.Set(tierKey, tier)
}

// RoleTierFromContext returns the resolved tier, defaulting to the
// standard tier when the permission gate has not run.
func RoleTierFromContext(c *gin.Context) model.RoleTier {
	v, exists := c.Get(tierKey)
	if !exists {
		return model.TierStandard
	}
	tier, ok := v.(model.RoleTier)
	if !ok {
		return model.TierStandard
	}
	return tier
}

// ScopeFromContext resolves the tenant scope for the request. Normal
// users are pinned to their token's company. The System Super Admin
// tier has no company of its own: it either names a target company via
// the company_id query parameter or operates across all tenants.
func ScopeFromContext(c *gin.Context) (Scope, error) {
	id, err := IdentityFromContext(c)
	if err != nil {
		return Scope{}, err
	}
	if RoleTierFromContext(c) == model.TierSystemSuperAdmin {
		if target := c.Query("company_id"); target != "" {
			return Scope{CompanyID: target}, nil
		}
		return Scope{All: true}, nil
	}
	if id.CompanyID == "" {
		return Scope{}, errors.ErrForbidden
	}
	return Scope{CompanyID: id.CompanyID}, nil
}
