package dto

import (
	"time"

	"seniorwork_backend/internal/models"
)

type ListNotificationsQuery struct {
	UnreadOnly bool `form:"unread_only"`
	Page       int  `form:"page"`
	PageSize   int  `form:"page_size"`
}

type NotificationResponse struct {
	ID         string                  `json:"id"`
	Type       models.NotificationType `json:"type"`
	Title      string                  `json:"title"`
	Message    string                  `json:"message"`
	IsRead     bool                    `json:"is_read"`
	ReadAt     *time.Time              `json:"read_at,omitempty"`
	ActionURL  string                  `json:"action_url,omitempty"`
	ActionText string                  `json:"action_text,omitempty"`
	CreatedAt  time.Time               `json:"created_at"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       n.Type,
		Title:      n.Title,
		Message:    n.Message,
		IsRead:     n.IsRead,
		ReadAt:     n.ReadAt,
		ActionURL:  n.ActionURL,
		ActionText: n.ActionText,
		CreatedAt:  n.CreatedAt,
	}
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// BroadcastRequest is the admin system announcement payload.
type BroadcastRequest struct {
	Type       string `json:"type" validate:"required,is-notification-type"`
	Title      string `json:"title" validate:"required,max=200"`
	Message    string `json:"message" validate:"required,max=2000"`
	ActionURL  string `json:"action_url" validate:"omitempty,max=500"`
	ActionText string `json:"action_text" validate:"omitempty,max=100"`
}
