package repositories

import (
	"errors"

	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound  = errors.New("review not found")
	ErrDuplicateReview = errors.New("review already exists for this contract")
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByID(id string) (*models.Review, error)
	ListBySubject(subjectID string, page, pageSize int) ([]models.Review, int64, error)
	AverageRating(subjectID string) (float64, int64, error)
	Delete(id string) error
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	err := r.db.Create(review).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateReview
	}
	return err
}

func (r *ReviewRepositoryImpl) FindByID(id string) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Author").Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListBySubject(subjectID string, page, pageSize int) ([]models.Review, int64, error) {
	var reviews []models.Review
	query := r.db.Model(&models.Review{}).Where("subject_id = ?", subjectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepositoryImpl) AverageRating(subjectID string) (float64, int64, error) {
	type aggRow struct {
		Avg   float64
		Count int64
	}
	var row aggRow
	err := r.db.Model(&models.Review{}).
		Where("subject_id = ?", subjectID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&row).Error
	return row.Avg, row.Count, err
}

func (r *ReviewRepositoryImpl) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
