package services

import (
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/metrics"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	userRepo repositories.UserRepository,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// NotifyUser writes a notification for a single user. Failures are logged
// and swallowed: a missing notification must never fail the operation that
// produced it.
func (s *NotificationService) NotifyUser(userID string, nType models.NotificationType, title, message, actionURL, actionText string) {
	n := &models.Notification{
		UserID:     userID,
		Type:       nType,
		Title:      title,
		Message:    message,
		ActionURL:  actionURL,
		ActionText: actionText,
	}
	if err := s.notificationRepo.Create(n); err != nil {
		logger.WithError(err).Error("failed to create notification", "user_id", userID)
		return
	}
	metrics.ObserveFanOut("user", 1)
}

// NotifyAdmins fans a notification out to every admin account.
func (s *NotificationService) NotifyAdmins(nType models.NotificationType, title, message, actionURL string) {
	adminIDs, err := s.userRepo.FindIDsByRole(models.UserRoleAdmin)
	if err != nil {
		logger.WithError(err).Error("failed to load admin ids for notification")
		return
	}
	if len(adminIDs) == 0 {
		return
	}

	notifications := make([]*models.Notification, 0, len(adminIDs))
	for _, id := range adminIDs {
		notifications = append(notifications, &models.Notification{
			UserID:    id,
			Type:      nType,
			Title:     title,
			Message:   message,
			ActionURL: actionURL,
		})
	}

	batchSize := config.GetConfig().Notifications.FanOutBatchSize
	if err := s.notificationRepo.CreateBulk(notifications, batchSize); err != nil {
		logger.WithError(err).Error("failed to fan out admin notification")
		return
	}
	metrics.ObserveFanOut("admins", len(notifications))
}

// NotifySystem broadcasts to every approved user. Recipient ids are walked
// with keyset pagination and rows are inserted in batches, so the broadcast
// stays bounded in memory no matter how large the user base grows.
func (s *NotificationService) NotifySystem(nType models.NotificationType, title, message, actionURL, actionText string) (int64, error) {
	batchSize := config.GetConfig().Notifications.FanOutBatchSize

	var total int64
	afterID := ""
	for {
		ids, err := s.userRepo.FindApprovedIDsBatch(afterID, batchSize)
		if err != nil {
			return total, apperrors.InternalError(err)
		}
		if len(ids) == 0 {
			break
		}

		notifications := make([]*models.Notification, 0, len(ids))
		for _, id := range ids {
			notifications = append(notifications, &models.Notification{
				UserID:     id,
				Type:       nType,
				Title:      title,
				Message:    message,
				ActionURL:  actionURL,
				ActionText: actionText,
			})
		}

		if err := s.notificationRepo.CreateBulk(notifications, batchSize); err != nil {
			return total, apperrors.InternalError(err)
		}
		total += int64(len(notifications))
		metrics.ObserveFanOut("system", len(notifications))

		afterID = ids[len(ids)-1]
		if len(ids) < batchSize {
			break
		}
	}

	return total, nil
}

// Broadcast is the admin entry point for a system announcement.
func (s *NotificationService) Broadcast(caller auth.Caller, req dto.BroadcastRequest) (int64, error) {
	if err := auth.Authorize(caller, auth.ActionAdminNotifications); err != nil {
		return 0, err
	}
	return s.NotifySystem(models.NotificationType(req.Type), req.Title, req.Message, req.ActionURL, req.ActionText)
}

func (s *NotificationService) List(userID string, query dto.ListNotificationsQuery) ([]dto.NotificationResponse, dto.Pagination, error) {
	criteria := repositories.NotificationFilter{
		UserID:     userID,
		UnreadOnly: query.UnreadOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}

	notifications, total, err := s.notificationRepo.FindUserNotifications(criteria)
	if err != nil {
		return nil, dto.Pagination{}, apperrors.InternalError(err)
	}

	items := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		items = append(items, dto.NewNotificationResponse(&notifications[i]))
	}
	return items, dto.NewPagination(query.Page, query.PageSize, total), nil
}

func (s *NotificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notificationRepo.GetUnreadCount(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationService) MarkAsRead(userID, notificationID string) error {
	err := s.notificationRepo.MarkAsRead(notificationID, userID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(userID string) (int64, error) {
	count, err := s.notificationRepo.MarkAllAsRead(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *NotificationService) Delete(userID, notificationID string) error {
	err := s.notificationRepo.Delete(notificationID, userID)
	if err != nil {
		if err == repositories.ErrNotificationNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationService) DeleteAll(userID string) (int64, error) {
	count, err := s.notificationRepo.DeleteAllForUser(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}
