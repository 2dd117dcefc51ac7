package models

// Application links a candidate to a job. The composite unique index is the
// guarantee against duplicate applications: a concurrent second insert fails
// with a duplicate-key error that the repository maps to a conflict.
type Application struct {
	BaseModel
	JobID       string            `gorm:"not null;index;uniqueIndex:idx_applications_job_candidate" json:"job_id"`
	CandidateID string            `gorm:"not null;index;uniqueIndex:idx_applications_job_candidate" json:"candidate_id"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CoverLetter string            `json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`
	Rating      *int              `gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)" json:"rating,omitempty"`

	// Relations
	Job       *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Candidate *User `gorm:"foreignKey:CandidateID" json:"candidate,omitempty"`
}
