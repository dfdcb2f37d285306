// model/access.go
package model

import "time"

// Action is one of the three operations a permission can grant.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

// Valid reports whether a is one of the known actions.
func (a Action) Valid() bool {
	switch a {
	case ActionRead, ActionWrite, ActionDelete:
		return true
	}
	return false
}

// RoleTier classifies a role once, instead of comparing role names at
// every call site.
type RoleTier string

const (
	// TierSystemSuperAdmin is the company-unscoped tier. It bypasses
	// permission lookup and tenant scoping.
	TierSystemSuperAdmin RoleTier = "system_super_admin"
	TierStandard         RoleTier = "standard"
)

type Role struct {
	ID          string   `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string   `json:"name" gorm:"not null"`
	Description string   `json:"description"`
	// CompanyID is null for global/system roles.
	CompanyID *string   `json:"company_id,omitempty" gorm:"type:uuid;index"`
	Tier      RoleTier  `json:"tier" gorm:"default:standard"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Permission grants Action on ModuleID to RoleID. Presence grants,
// absence denies; there is no deny record.
type Permission struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	RoleID    string    `json:"role_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_module_action"`
	ModuleID  string    `json:"module_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_module_action"`
	Action    Action    `json:"action" gorm:"not null;uniqueIndex:idx_role_module_action"`
	CreatedAt time.Time `json:"created_at"`
}
