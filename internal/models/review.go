package models

type Review struct {
	BaseModel
	AuthorID   string  `gorm:"not null;index;uniqueIndex:idx_reviews_author_subject_contract" json:"author_id"`
	SubjectID  string  `gorm:"not null;index;uniqueIndex:idx_reviews_author_subject_contract" json:"subject_id"`
	ContractID *string `gorm:"index;uniqueIndex:idx_reviews_author_subject_contract" json:"contract_id,omitempty"`
	Rating     int     `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment    string  `json:"comment"`

	// Relations
	Author  *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Subject *User `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
}
