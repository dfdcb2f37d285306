// audit/model.go
package audit

import "time"

// Decision is one permission-gate outcome. Bypass marks decisions
// granted on the System Super Admin tier without a permission lookup.
type Decision struct {
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	RoleID    string    `json:"role_id"`
	CompanyID string    `json:"company_id,omitempty"`
	ModuleID  string    `json:"module_id"`
	Action    string    `json:"action"`
	Granted   bool      `json:"granted"`
	Bypass    bool      `json:"bypass"`
}
