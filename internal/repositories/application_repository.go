package repositories

import (
	"errors"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("candidate already applied to this job")
)

type ApplicationRepository interface {
	CreateWithFanOut(app *models.Application, notifications []*models.Notification) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)
	ListByCandidate(candidateID string, page, pageSize int) ([]models.Application, int64, error)
	ListByJob(jobID string, status string, page, pageSize int) ([]models.Application, int64, error)
	ListByEmployer(employerID string, status string, page, pageSize int) ([]models.Application, int64, error)
	UpdateStatus(id string, status models.ApplicationStatus, rating *int, notification *models.Notification) error
	DeleteWithCounter(id, jobID string) error
	CountByStatus() (map[models.ApplicationStatus]int64, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// CreateWithFanOut inserts the application, bumps the job's counter and
// writes the resulting notifications in one transaction. The unique index
// on (job_id, candidate_id) is what actually closes the duplicate race:
// a concurrent second insert fails here and the whole transaction rolls back.
func (r *ApplicationRepositoryImpl) CreateWithFanOut(app *models.Application, notifications []*models.Notification) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateApplication
			}
			return err
		}

		err := tx.Model(&models.Job{}).Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
		if err != nil {
			return err
		}

		if len(notifications) > 0 {
			if err := tx.Create(notifications).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var app models.Application
	err := r.db.Preload("Job").Preload("Candidate").Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var app models.Application
	err := r.db.Where("job_id = ? AND candidate_id = ?", jobID, candidateID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string, page, pageSize int) ([]models.Application, int64, error) {
	var apps []models.Application
	query := r.db.Model(&models.Application{}).Where("candidate_id = ?", candidateID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Job").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&apps).Error
	return apps, total, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string, status string, page, pageSize int) ([]models.Application, int64, error) {
	var apps []models.Application
	query := r.db.Model(&models.Application{}).Where("job_id = ?", jobID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Candidate").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&apps).Error
	return apps, total, err
}

// ListByEmployer returns applications across all of the employer's jobs.
func (r *ApplicationRepositoryImpl) ListByEmployer(employerID string, status string, page, pageSize int) ([]models.Application, int64, error) {
	var apps []models.Application
	query := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID)
	if status != "" {
		query = query.Where("applications.status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Job").Preload("Candidate").
		Order("applications.created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&apps).Error
	return apps, total, err
}

// UpdateStatus changes the moderation status and, when a notification is
// given, writes it in the same transaction so the candidate never sees a
// decision without being told about it. An optional rating is recorded with
// the decision.
func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus, rating *int, notification *models.Notification) error {
	updates := map[string]interface{}{"status": status}
	if rating != nil {
		updates["rating"] = *rating
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Application{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		if notification != nil {
			if err := tx.Create(notification).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteWithCounter removes a withdrawn application and decrements the
// job's counter, floored at zero.
func (r *ApplicationRepositoryImpl) DeleteWithCounter(id, jobID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.Application{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrApplicationNotFound
		}

		return tx.Model(&models.Job{}).
			Where("id = ? AND applications_count > 0", jobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count - 1")).Error
	})
}

func (r *ApplicationRepositoryImpl) CountByStatus() (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
