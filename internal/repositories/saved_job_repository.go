package repositories

import (
	"errors"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrSavedJobNotFound = errors.New("saved job not found")
	ErrJobAlreadySaved  = errors.New("job already saved")
)

type SavedJobRepository interface {
	Save(userID, jobID string) error
	Unsave(userID, jobID string) error
	ListByUser(userID string, page, pageSize int) ([]models.SavedJob, int64, error)
	IsSaved(userID, jobID string) (bool, error)
	SavedSet(userID string, jobIDs []string) (map[string]bool, error)
}

type SavedJobRepositoryImpl struct {
	db *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) SavedJobRepository {
	return &SavedJobRepositoryImpl{db: db}
}

func (r *SavedJobRepositoryImpl) Save(userID, jobID string) error {
	saved := models.SavedJob{UserID: userID, JobID: jobID}
	err := r.db.Create(&saved).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrJobAlreadySaved
	}
	return err
}

func (r *SavedJobRepositoryImpl) Unsave(userID, jobID string) error {
	result := r.db.Where("user_id = ? AND job_id = ?", userID, jobID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSavedJobNotFound
	}
	return nil
}

func (r *SavedJobRepositoryImpl) ListByUser(userID string, page, pageSize int) ([]models.SavedJob, int64, error) {
	var saved []models.SavedJob
	query := r.db.Model(&models.SavedJob{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Job").Preload("Job.Employer").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&saved).Error
	return saved, total, err
}

func (r *SavedJobRepositoryImpl) IsSaved(userID, jobID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

// SavedSet annotates a page of jobs in one query instead of N lookups.
func (r *SavedJobRepositoryImpl) SavedSet(userID string, jobIDs []string) (map[string]bool, error) {
	set := make(map[string]bool, len(jobIDs))
	if len(jobIDs) == 0 {
		return set, nil
	}

	var ids []string
	err := r.db.Model(&models.SavedJob{}).
		Where("user_id = ? AND job_id IN ?", userID, jobIDs).
		Pluck("job_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
