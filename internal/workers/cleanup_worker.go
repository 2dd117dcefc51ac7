package workers

import (
	"context"
	"time"

	"seniorwork_backend/internal/config"
	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/repositories"
)

type CleanupWorker struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	notificationRepo repositories.NotificationRepository
}

func NewCleanupWorker(
	refreshTokenRepo repositories.RefreshTokenRepository,
	notificationRepo repositories.NotificationRepository,
) *CleanupWorker {
	return &CleanupWorker{
		refreshTokenRepo: refreshTokenRepo,
		notificationRepo: notificationRepo,
	}
}

// Start launches the periodic cleanup tasks.
func (w *CleanupWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
	go w.cleanOldNotifications(ctx)
}

func (w *CleanupWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			removed, err := w.refreshTokenRepo.CleanExpired()
			if err != nil {
				logger.WorkerLog("cleanup", "clean_expired_tokens", err)
				continue
			}
			if removed > 0 {
				logger.Info("removed expired refresh tokens", "count", removed)
			}
		}
	}
}

// cleanOldNotifications drops read notifications past the retention window.
func (w *CleanupWorker) cleanOldNotifications(ctx context.Context) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification cleanup worker stopped")
			return
		case <-ticker.C:
			retention := config.GetConfig().Notifications.RetentionDays
			cutoff := time.Now().AddDate(0, 0, -retention)

			removed, err := w.notificationRepo.DeleteReadOlderThan(cutoff)
			if err != nil {
				logger.WorkerLog("cleanup", "clean_old_notifications", err)
				continue
			}
			if removed > 0 {
				logger.Info("removed old notifications", "count", removed)
			}
		}
	}
}
