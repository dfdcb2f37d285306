package model

import "time"

// Document is an attachment stored externally and referenced by URL.
type Document struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	TaskID    string    `json:"task_id" gorm:"type:uuid;index;not null"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null"`
	CompanyID string    `json:"company_id" gorm:"type:uuid;index;not null"`
	FileName  string    `json:"file_name" gorm:"not null"`
	URL       string    `json:"url" gorm:"not null"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"created_at"`
}
