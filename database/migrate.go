package database

import (
	"seniorwork_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Order matters for foreign keys:
// parents before children.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.SavedJob{},
		&models.Application{},
		&models.Notification{},
		&models.Message{},
		&models.Contract{},
		&models.Invoice{},
		&models.TimeEntry{},
		&models.Review{},
	)
}
