package models

type Message struct {
	BaseModel
	SenderID      string  `gorm:"not null;index" json:"sender_id"`
	ReceiverID    string  `gorm:"not null;index" json:"receiver_id"`
	JobID         *string `gorm:"index" json:"job_id,omitempty"`
	ApplicationID *string `gorm:"index" json:"application_id,omitempty"`
	Content       string  `gorm:"not null" json:"content"`
	IsRead        bool    `gorm:"default:false" json:"is_read"`

	// Relations
	Sender   *User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
