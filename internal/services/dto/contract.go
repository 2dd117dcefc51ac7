package dto

import (
	"time"

	"seniorwork_backend/internal/models"

	"gorm.io/datatypes"
)

type CreateContractRequest struct {
	CandidateID string          `json:"candidate_id" validate:"required,uuid4"`
	JobID       *string         `json:"job_id,omitempty" validate:"omitempty,uuid4"`
	Title       string          `json:"title" validate:"required,min=3,max=200"`
	Terms       *datatypes.JSON `json:"terms,omitempty"`
	HourlyRate  float64         `json:"hourly_rate" validate:"required,gt=0"`
	StartDate   *time.Time      `json:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty"`
}

type UpdateContractRequest struct {
	Title      *string         `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Terms      *datatypes.JSON `json:"terms,omitempty"`
	HourlyRate *float64        `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	StartDate  *time.Time      `json:"start_date,omitempty"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
}

type UpdateContractStatusRequest struct {
	Status string `json:"status" validate:"required,is-contract-status"`
}

type ContractResponse struct {
	ID            string                `json:"id"`
	EmployerID    string                `json:"employer_id"`
	EmployerName  string                `json:"employer_name,omitempty"`
	CandidateID   string                `json:"candidate_id"`
	CandidateName string                `json:"candidate_name,omitempty"`
	JobID         *string               `json:"job_id,omitempty"`
	Title         string                `json:"title"`
	Terms         datatypes.JSON        `json:"terms,omitempty"`
	HourlyRate    float64               `json:"hourly_rate"`
	Status        models.ContractStatus `json:"status"`
	StartDate     *time.Time            `json:"start_date,omitempty"`
	EndDate       *time.Time            `json:"end_date,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

func NewContractResponse(c *models.Contract) ContractResponse {
	resp := ContractResponse{
		ID:          c.ID,
		EmployerID:  c.EmployerID,
		CandidateID: c.CandidateID,
		JobID:       c.JobID,
		Title:       c.Title,
		Terms:       c.Terms,
		HourlyRate:  c.HourlyRate,
		Status:      c.Status,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt,
	}
	if c.Employer != nil {
		resp.EmployerName = c.Employer.Name
	}
	if c.Candidate != nil {
		resp.CandidateName = c.Candidate.Name
	}
	return resp
}

type CreateInvoiceRequest struct {
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required,gtfield=PeriodStart"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,is-invoice-status"`
}

type InvoiceResponse struct {
	ID         string               `json:"id"`
	ContractID string               `json:"contract_id"`
	Number     string               `json:"number"`
	Amount     float64              `json:"amount"`
	Currency   string               `json:"currency"`
	Status     models.InvoiceStatus `json:"status"`
	DueDate    *time.Time           `json:"due_date,omitempty"`
	PaidAt     *time.Time           `json:"paid_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}

func NewInvoiceResponse(inv *models.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		ContractID: inv.ContractID,
		Number:     inv.Number,
		Amount:     inv.Amount,
		Currency:   inv.Currency,
		Status:     inv.Status,
		DueDate:    inv.DueDate,
		PaidAt:     inv.PaidAt,
		CreatedAt:  inv.CreatedAt,
	}
}

type LogTimeEntryRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	Hours       float64   `json:"hours" validate:"required,gt=0,lte=24"`
	Description string    `json:"description" validate:"max=1000"`
}

type ReviewTimeEntryRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

type TimeEntryResponse struct {
	ID          string                 `json:"id"`
	ContractID  string                 `json:"contract_id"`
	CandidateID string                 `json:"candidate_id"`
	Date        time.Time              `json:"date"`
	Hours       float64                `json:"hours"`
	Description string                 `json:"description,omitempty"`
	Status      models.TimeEntryStatus `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
}

func NewTimeEntryResponse(e *models.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:          e.ID,
		ContractID:  e.ContractID,
		CandidateID: e.CandidateID,
		Date:        e.Date,
		Hours:       e.Hours,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
}
