package repositories

import (
	"errors"
	"time"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// Sortable columns for public listings. Anything else falls back to
// created_at to keep user input out of ORDER BY.
var jobSortColumns = map[string]string{
	"created_at":         "created_at",
	"title":              "title",
	"salary":             "salary",
	"views_count":        "views_count",
	"applications_count": "applications_count",
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindByIDWithEmployer(id string) (*models.Job, error)
	Update(job *models.Job) error
	Delete(id string) error
	ListByEmployer(employerID string, page, pageSize int) ([]models.Job, int64, error)
	FindWithFilter(criteria JobFilter) ([]models.Job, int64, error)
	IncrementViews(id string) error
	CountActive() (int64, error)
	CloseExpired(now time.Time) (int64, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

type JobFilter struct {
	Search   string `form:"q"`
	Category string `form:"category"`
	Location string `form:"location"`
	JobType  string `form:"job_type"`
	MinAge   int    `form:"min_age"`
	SortBy   string `form:"sort_by"`
	SortDir  string `form:"sort_dir"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByIDWithEmployer(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.Preload("Employer").Where("id = ?", id).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.Job) error {
	result := r.db.Model(job).Updates(map[string]interface{}{
		"title":        job.Title,
		"company":      job.Company,
		"location":     job.Location,
		"job_type":     job.JobType,
		"category":     job.Category,
		"description":  job.Description,
		"requirements": job.Requirements,
		"benefits":     job.Benefits,
		"salary":       job.Salary,
		"age_min":      job.AgeMin,
		"age_max":      job.AgeMax,
		"is_active":    job.IsActive,
		"deadline":     job.Deadline,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	// Children first so the delete also works without FK cascade support.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", id).Delete(&models.SavedJob{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string, page, pageSize int) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{}).Where("employer_id = ?", employerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&jobs).Error
	return jobs, total, err
}

// FindWithFilter is the public job search. Inactive and expired jobs never
// appear regardless of filters.
func (r *JobRepositoryImpl) FindWithFilter(criteria JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	query := r.db.Model(&models.Job{}).
		Where("is_active = ?", true).
		Where("deadline IS NULL OR deadline > ?", time.Now())

	if criteria.Search != "" {
		search := "%" + criteria.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ? OR company ILIKE ?", search, search, search)
	}
	if criteria.Category != "" {
		query = query.Where("category = ?", criteria.Category)
	}
	if criteria.Location != "" {
		query = query.Where("location ILIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.JobType != "" {
		query = query.Where("job_type = ?", criteria.JobType)
	}
	if criteria.MinAge > 0 {
		query = query.Where("age_min IS NULL OR age_min <= ?", criteria.MinAge)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := jobSortColumns[criteria.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "DESC"
	if criteria.SortDir == "asc" {
		direction = "ASC"
	}

	err := query.Preload("Employer").
		Order(sortColumn + " " + direction).
		Limit(criteria.PageSize).Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&jobs).Error

	return jobs, total, err
}

func (r *JobRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Job{}).Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// CloseExpired deactivates jobs whose deadline has passed. Run by the
// deadline worker.
func (r *JobRepositoryImpl) CloseExpired(now time.Time) (int64, error) {
	result := r.db.Model(&models.Job{}).
		Where("is_active = ? AND deadline IS NOT NULL AND deadline <= ?", true, now).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *JobRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
