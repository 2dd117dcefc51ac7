package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID     string           `gorm:"not null;index" json:"user_id"`
	Type       NotificationType `gorm:"type:varchar(20);not null" json:"type"`
	Title      string           `gorm:"not null" json:"title"`
	Message    string           `json:"message"`
	IsRead     bool             `gorm:"default:false;index" json:"is_read"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
	ActionURL  string           `json:"action_url,omitempty"`
	ActionText string           `json:"action_text,omitempty"`
	Metadata   datatypes.JSON   `gorm:"type:jsonb" json:"metadata,omitempty"` // {"job_id": "...", "application_id": "..."}
}
