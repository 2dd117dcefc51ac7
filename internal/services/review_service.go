package services

import (
	"seniorwork_backend/internal/auth"
	"seniorwork_backend/internal/models"
	"seniorwork_backend/internal/repositories"
	"seniorwork_backend/internal/services/dto"
	"seniorwork_backend/pkg/apperrors"
)

type ReviewService struct {
	reviewRepo          repositories.ReviewRepository
	contractRepo        repositories.ContractRepository
	notificationService *NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	contractRepo repositories.ContractRepository,
	notificationService *NotificationService,
) *ReviewService {
	return &ReviewService{
		reviewRepo:          reviewRepo,
		contractRepo:        contractRepo,
		notificationService: notificationService,
	}
}

// Create leaves a review for the other party of a completed contract. The
// composite unique index keeps it to one review per author per contract.
func (s *ReviewService) Create(caller auth.Caller, req dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if err := auth.Authorize(caller, auth.ActionReviewCreate); err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindByID(req.ContractID)
	if err != nil {
		if err == repositories.ErrContractNotFound {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if caller.ID != contract.EmployerID && caller.ID != contract.CandidateID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if contract.Status != models.ContractStatusCompleted {
		return nil, apperrors.ErrContractNotCompleted
	}

	subjectID := contract.CandidateID
	if caller.ID == contract.CandidateID {
		subjectID = contract.EmployerID
	}

	review := &models.Review{
		AuthorID:   caller.ID,
		SubjectID:  subjectID,
		ContractID: &req.ContractID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if err == repositories.ErrDuplicateReview {
			return nil, apperrors.ErrAlreadyReviewed
		}
		return nil, apperrors.InternalError(err)
	}

	s.notificationService.NotifyUser(subjectID, models.NotificationTypeInfo,
		"New review",
		"You received a new review for "+contract.Title+".",
		"/users/"+subjectID+"/reviews", "View reviews")

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

// ListBySubject is public: anyone can read a user's reviews and rating.
func (s *ReviewService) ListBySubject(subjectID string, page, pageSize int) (*dto.ReviewListResponse, error) {
	reviews, total, err := s.reviewRepo.ListBySubject(subjectID, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	avg, count, err := s.reviewRepo.AverageRating(subjectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, dto.NewReviewResponse(&reviews[i]))
	}

	return &dto.ReviewListResponse{
		Items:         items,
		Pagination:    dto.NewPagination(page, pageSize, total),
		AverageRating: avg,
		ReviewCount:   count,
	}, nil
}

// Delete is admin-only moderation.
func (s *ReviewService) Delete(caller auth.Caller, reviewID string) error {
	if caller.Role != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	err := s.reviewRepo.Delete(reviewID)
	if err != nil {
		if err == repositories.ErrReviewNotFound {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
