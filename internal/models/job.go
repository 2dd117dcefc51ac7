package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	EmployerID  string  `gorm:"not null;index" json:"employer_id"`
	Title       string  `gorm:"not null" json:"title"`
	Company     string  `gorm:"not null" json:"company"`
	Location    string  `json:"location"`
	JobType     JobType `gorm:"type:varchar(20);not null" json:"job_type"`
	Category    string  `gorm:"index" json:"category"`
	Description string  `json:"description"`

	Requirements datatypes.JSON `gorm:"type:jsonb" json:"requirements,omitempty"` // ordered list of strings
	Benefits     datatypes.JSON `gorm:"type:jsonb" json:"benefits,omitempty"`     // ordered list of strings

	Salary string `json:"salary"` // free text, e.g. "2500-3000 EUR"
	AgeMin *int   `json:"age_min,omitempty"`
	AgeMax *int   `json:"age_max,omitempty"`

	IsActive          bool       `gorm:"default:true;index" json:"is_active"`
	ApplicationsCount int        `gorm:"default:0" json:"applications_count"`
	ViewsCount        int        `gorm:"default:0" json:"views_count"`
	Deadline          *time.Time `json:"deadline,omitempty"`

	// Relations
	Employer     *User         `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"-"`
}

type SavedJob struct {
	BaseModel
	UserID string `gorm:"not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"user_id"`
	JobID  string `gorm:"not null;index;uniqueIndex:idx_saved_jobs_user_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}
