package database

import (
	"workaholic_backend/internal/logger"
	"workaholic_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate keeps the schema in sync with the model structs. Order
// matters: parents before tables that reference them.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations")

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserDetails{},
		&models.FreelancerDetails{},
		&models.JobPost{},
		&models.JobApplication{},
	); err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
