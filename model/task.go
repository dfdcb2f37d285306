package model

import (
	"time"

	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type Task struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Status      TaskStatus     `json:"status" gorm:"default:open"`
	CompanyID   string         `json:"company_id" gorm:"type:uuid;index;not null"`
	IterationID *string        `json:"iteration_id,omitempty" gorm:"type:uuid;index"`
	CreatedBy   string         `json:"created_by" gorm:"type:uuid"`
	DueDate     *time.Time     `json:"due_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

type Iteration struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string     `json:"name" gorm:"not null"`
	CompanyID string     `json:"company_id" gorm:"type:uuid;index;not null"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TaskAssignment links a task to an assignee. Creating or moving one
// triggers a notification to the assignee.
type TaskAssignment struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	TaskID     string    `json:"task_id" gorm:"type:uuid;index;not null"`
	AssigneeID string    `json:"assignee_id" gorm:"type:uuid;index;not null"`
	AssignedBy string    `json:"assigned_by" gorm:"type:uuid"`
	CompanyID  string    `json:"company_id" gorm:"type:uuid;index;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	TaskID    string    `json:"task_id" gorm:"type:uuid;index;not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null"`
	CompanyID string    `json:"company_id" gorm:"type:uuid;index;not null"`
	Body      string    `json:"body" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TaskSearchCriteria struct {
	Status      TaskStatus `json:"status,omitempty"`
	IterationID string     `json:"iteration_id,omitempty"`
	AssigneeID  string     `json:"assignee_id,omitempty"`
	Limit       int        `json:"limit,omitempty"`
	Offset      int        `json:"offset,omitempty"`
}
