package models

import (
	"time"

	"gorm.io/datatypes"
)

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Name         string     `gorm:"not null" json:"name"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`

	Bio         string         `json:"bio"`
	Location    string         `json:"location"`
	BirthYear   *int           `json:"birth_year,omitempty"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills,omitempty"`
	Experience  datatypes.JSON `gorm:"type:jsonb" json:"experience,omitempty"`
	Education   datatypes.JSON `gorm:"type:jsonb" json:"education,omitempty"`
	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences,omitempty"`

	// Relations
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
