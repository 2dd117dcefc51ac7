package dto

import (
	"time"

	"seniorwork_backend/internal/models"
)

type SendMessageRequest struct {
	ReceiverID    string  `json:"receiver_id" validate:"required,uuid4"`
	Content       string  `json:"content" validate:"required,max=5000"`
	JobID         *string `json:"job_id,omitempty" validate:"omitempty,uuid4"`
	ApplicationID *string `json:"application_id,omitempty" validate:"omitempty,uuid4"`
}

type MessageResponse struct {
	ID            string    `json:"id"`
	SenderID      string    `json:"sender_id"`
	ReceiverID    string    `json:"receiver_id"`
	Content       string    `json:"content"`
	JobID         *string   `json:"job_id,omitempty"`
	ApplicationID *string   `json:"application_id,omitempty"`
	IsRead        bool      `json:"is_read"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewMessageResponse(m *models.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		SenderID:      m.SenderID,
		ReceiverID:    m.ReceiverID,
		Content:       m.Content,
		JobID:         m.JobID,
		ApplicationID: m.ApplicationID,
		IsRead:        m.IsRead,
		CreatedAt:     m.CreatedAt,
	}
}

type ConversationResponse struct {
	PeerID      string          `json:"peer_id"`
	PeerName    string          `json:"peer_name,omitempty"`
	LastMessage MessageResponse `json:"last_message"`
	UnreadCount int64           `json:"unread_count"`
}
