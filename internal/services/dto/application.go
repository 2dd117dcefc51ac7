package dto

import (
	"time"

	"seniorwork_backend/internal/models"
)

type SubmitApplicationRequest struct {
	JobID       string `json:"job_id" validate:"required,uuid4"`
	CoverLetter string `json:"cover_letter" validate:"max=5000"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url,max=500"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=reviewed accepted rejected"`
	Rating *int   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

type ListApplicationsQuery struct {
	Status   string `form:"status" validate:"omitempty,is-application-status"`
	JobID    string `form:"job_id" validate:"omitempty,uuid4"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	JobID         string                   `json:"job_id"`
	JobTitle      string                   `json:"job_title,omitempty"`
	Company       string                   `json:"company,omitempty"`
	CandidateID   string                   `json:"candidate_id"`
	CandidateName string                   `json:"candidate_name,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CoverLetter   string                   `json:"cover_letter,omitempty"`
	ResumeURL     string                   `json:"resume_url,omitempty"`
	Rating        *int                     `json:"rating,omitempty"`
	CreatedAt     time.Time                `json:"created_at"`
	UpdatedAt     time.Time                `json:"updated_at"`
}

func NewApplicationResponse(app *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:          app.ID,
		JobID:       app.JobID,
		CandidateID: app.CandidateID,
		Status:      app.Status,
		CoverLetter: app.CoverLetter,
		ResumeURL:   app.ResumeURL,
		Rating:      app.Rating,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
		resp.Company = app.Job.Company
	}
	if app.Candidate != nil {
		resp.CandidateName = app.Candidate.Name
	}
	return resp
}
