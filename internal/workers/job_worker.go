package workers

import (
	"context"
	"time"

	"seniorwork_backend/internal/logger"
	"seniorwork_backend/internal/repositories"
)

type JobWorker struct {
	jobRepo repositories.JobRepository
}

func NewJobWorker(jobRepo repositories.JobRepository) *JobWorker {
	return &JobWorker{jobRepo: jobRepo}
}

// Start launches the background tasks for job postings.
func (w *JobWorker) Start(ctx context.Context) {
	go w.autoCloseExpired(ctx)
}

// autoCloseExpired deactivates postings whose deadline has passed, hourly.
func (w *JobWorker) autoCloseExpired(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("job worker stopped")
			return
		case <-ticker.C:
			closed, err := w.jobRepo.CloseExpired(time.Now())
			if err != nil {
				logger.WorkerLog("job", "auto_close_expired", err)
				continue
			}
			if closed > 0 {
				logger.Info("auto-closed expired jobs", "count", closed)
			}
		}
	}
}
