package dto

import (
	"time"

	"seniorwork_backend/internal/models"
)

type CreateReviewRequest struct {
	ContractID string `json:"contract_id" validate:"required,uuid4"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment" validate:"max=2000"`
}

type ReviewResponse struct {
	ID         string    `json:"id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name,omitempty"`
	SubjectID  string    `json:"subject_id"`
	ContractID *string   `json:"contract_id,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		SubjectID:  r.SubjectID,
		ContractID: r.ContractID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
	if r.Author != nil {
		resp.AuthorName = r.Author.Name
	}
	return resp
}

type ReviewListResponse struct {
	Items         []ReviewResponse `json:"items"`
	Pagination    Pagination       `json:"pagination"`
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int64            `json:"review_count"`
}
