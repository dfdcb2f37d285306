package model

import "time"

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	// CompanyID is null only for the company-unscoped system tier.
	CompanyID    *string   `json:"company_id,omitempty" gorm:"type:uuid;index"`
	RoleID       string    `json:"role_id" gorm:"type:uuid;not null"`
	ManagerID    *string   `json:"manager_id,omitempty" gorm:"type:uuid"`
	DepartmentID *string   `json:"department_id,omitempty" gorm:"type:uuid"`
	Active       bool      `json:"active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserSearchCriteria struct {
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	RoleID       string `json:"role_id,omitempty"`
	DepartmentID string `json:"department_id,omitempty"`
	Limit        int    `json:"limit,omitempty"`
	Offset       int    `json:"offset,omitempty"`
}
