package services

import (
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type MessageService struct {
	messageRepo         repositories.MessageRepository
	userRepo            repositories.UserRepository
	notificationService *NotificationService
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	userRepo repositories.UserRepository,
	notificationService *NotificationService,
) *MessageService {
	return &MessageService{
		messageRepo:         messageRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// Send stores a direct message and notifies the receiver.
func (s *MessageService) Send(caller auth.Caller, req dto.SendMessageRequest) (*dto.MessageResponse, error) {
	if err := auth.Authorize(caller, auth.ActionMessageSend); err != nil {
		return nil, err
	}

	if req.ReceiverID == caller.ID {
		return nil, apperrors.ErrInvalidOperation("message", "You cannot message yourself")
	}

	receiver, err := s.userRepo.FindByID(req.ReceiverID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	sender, err := s.userRepo.FindByID(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		SenderID:      caller.ID,
		ReceiverID:    receiver.ID,
		Content:       req.Content,
		JobID:         req.JobID,
		ApplicationID: req.ApplicationID,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.NotifyUser(receiver.ID, models.NotificationTypeInfo,
		"New message",
		sender.Name+" sent you a message.",
		"/messages/"+caller.ID, "Open conversation")

	resp := dto.NewMessageResponse(message)
	return &resp, nil
}

func (s *MessageService) ListConversations(userID string) ([]dto.ConversationResponse, error) {
	summaries, err := s.messageRepo.ListConversations(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ConversationResponse, 0, len(summaries))
	for _, summary := range summaries {
		conv := dto.ConversationResponse{
			PeerID:      summary.PeerID,
			LastMessage: dto.NewMessageResponse(summary.LastMessage),
			UnreadCount: summary.UnreadCount,
		}
		if summary.Peer != nil {
			conv.PeerName = summary.Peer.Name
		}
		items = append(items, conv)
	}
	return items, nil
}

// ListThread returns the exchange with one peer and marks the peer's
// unread messages as read.
func (s *MessageService) ListThread(userID, peerID string, page, pageSize int) ([]dto.MessageResponse, dto.Pagination, error) {
	if _, err := s.userRepo.FindByID(peerID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, dto.Pagination{}, apperrors.ErrNotFound(err)
		}
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	messages, total, err := s.messageRepo.ListThread(userID, peerID, page, pageSize)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	if _, err := s.messageRepo.MarkThreadRead(userID, peerID); err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.MessageResponse, 0, len(messages))
	for i := range messages {
		items = append(items, dto.NewMessageResponse(&messages[i]))
	}
	return items, dto.NewPagination(page, pageSize, total), nil
}

func (s *MessageService) UnreadCount(userID string) (int64, error) {
	count, err := s.messageRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
