package models

import (
	"time"

	"gorm.io/datatypes"
)

type Contract struct {
	BaseModel
	EmployerID  string         `gorm:"not null;index" json:"employer_id"`
	CandidateID string         `gorm:"not null;index" json:"candidate_id"`
	JobID       *string        `gorm:"index" json:"job_id,omitempty"`
	Title       string         `gorm:"not null" json:"title"`
	Terms       datatypes.JSON `gorm:"type:jsonb" json:"terms,omitempty"`
	HourlyRate  float64        `json:"hourly_rate"`
	Status      ContractStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`

	// Relations
	Employer    *User       `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Candidate   *User       `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
	Invoices    []Invoice   `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"-"`
	TimeEntries []TimeEntry `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE" json:"-"`
}

type Invoice struct {
	BaseModel
	ContractID string        `gorm:"not null;index" json:"contract_id"`
	Number     string        `gorm:"uniqueIndex;not null" json:"number"`
	Amount     float64       `gorm:"not null" json:"amount"`
	Currency   string        `gorm:"type:varchar(3);default:'EUR'" json:"currency"`
	Status     InvoiceStatus `gorm:"type:varchar(20);default:'draft'" json:"status"`
	DueDate    *time.Time    `json:"due_date,omitempty"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
}

type TimeEntry struct {
	BaseModel
	ContractID  string          `gorm:"not null;index" json:"contract_id"`
	CandidateID string          `gorm:"not null;index" json:"candidate_id"`
	Date        time.Time       `gorm:"not null" json:"date"`
	Hours       float64         `gorm:"not null;check:hours > 0 AND hours <= 24" json:"hours"`
	Description string          `json:"description"`
	Status      TimeEntryStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
}
