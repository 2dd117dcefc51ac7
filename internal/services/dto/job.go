package dto

import (
	"time"

	"seniorwork_backend/internal/models"

	"gorm.io/datatypes"
)

type CreateJobRequest struct {
	Title        string          `json:"title" validate:"required,min=3,max=200"`
	Company      string          `json:"company" validate:"required,max=200"`
	Location     string          `json:"location" validate:"max=200"`
	JobType      string          `json:"job_type" validate:"required,is-job-type"`
	Category     string          `json:"category" validate:"max=100"`
	Description  string          `json:"description" validate:"required"`
	Requirements *datatypes.JSON `json:"requirements,omitempty"`
	Benefits     *datatypes.JSON `json:"benefits,omitempty"`
	Salary       string          `json:"salary" validate:"max=100"`
	AgeMin       *int            `json:"age_min,omitempty" validate:"omitempty,min=16,max=100"`
	AgeMax       *int            `json:"age_max,omitempty" validate:"omitempty,min=16,max=100"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

type UpdateJobRequest struct {
	Title        *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Company      *string         `json:"company,omitempty" validate:"omitempty,max=200"`
	Location     *string         `json:"location,omitempty" validate:"omitempty,max=200"`
	JobType      *string         `json:"job_type,omitempty" validate:"omitempty,is-job-type"`
	Category     *string         `json:"category,omitempty" validate:"omitempty,max=100"`
	Description  *string         `json:"description,omitempty"`
	Requirements *datatypes.JSON `json:"requirements,omitempty"`
	Benefits     *datatypes.JSON `json:"benefits,omitempty"`
	Salary       *string         `json:"salary,omitempty" validate:"omitempty,max=100"`
	AgeMin       *int            `json:"age_min,omitempty" validate:"omitempty,min=16,max=100"`
	AgeMax       *int            `json:"age_max,omitempty" validate:"omitempty,min=16,max=100"`
	IsActive     *bool           `json:"is_active,omitempty"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
}

type JobResponse struct {
	ID                string          `json:"id"`
	EmployerID        string          `json:"employer_id"`
	EmployerName      string          `json:"employer_name,omitempty"`
	Title             string          `json:"title"`
	Company           string          `json:"company"`
	Location          string          `json:"location"`
	JobType           models.JobType  `json:"job_type"`
	Category          string          `json:"category"`
	Description       string          `json:"description"`
	Requirements      datatypes.JSON  `json:"requirements,omitempty"`
	Benefits          datatypes.JSON  `json:"benefits,omitempty"`
	Salary            string          `json:"salary"`
	AgeMin            *int            `json:"age_min,omitempty"`
	AgeMax            *int            `json:"age_max,omitempty"`
	IsActive          bool            `json:"is_active"`
	ApplicationsCount int             `json:"applications_count"`
	ViewsCount        int             `json:"views_count"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
	IsSaved           bool            `json:"is_saved"`
	CreatedAt         time.Time       `json:"created_at"`
}

func NewJobResponse(job *models.Job, isSaved bool) JobResponse {
	resp := JobResponse{
		ID:                job.ID,
		EmployerID:        job.EmployerID,
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		JobType:           job.JobType,
		Category:          job.Category,
		Description:       job.Description,
		Requirements:      job.Requirements,
		Benefits:          job.Benefits,
		Salary:            job.Salary,
		AgeMin:            job.AgeMin,
		AgeMax:            job.AgeMax,
		IsActive:          job.IsActive,
		ApplicationsCount: job.ApplicationsCount,
		ViewsCount:        job.ViewsCount,
		Deadline:          job.Deadline,
		IsSaved:           isSaved,
		CreatedAt:         job.CreatedAt,
	}
	if job.Employer != nil {
		resp.EmployerName = job.Employer.Name
	}
	return resp
}
