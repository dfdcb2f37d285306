package model

import "time"

type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	UserID    string    `json:"user_id" gorm:"type:uuid;index;not null"`
	CompanyID string    `json:"company_id" gorm:"type:uuid;index"`
	Message   string    `json:"message" gorm:"not null"`
	Link      string    `json:"link,omitempty"`
	IsSeen    bool      `json:"is_seen" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
}
