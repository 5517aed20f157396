package database

import (
	"taskflow/taskflow/models"

	"gorm.io/gorm"
)

// EnsureSchema idempotently creates the tasks table when absent. Both title
// and description carry NOT NULL so the schema matches the service-level
// contract instead of relying on handler validation alone.
func EnsureSchema(db *gorm.DB) error {
	return db.AutoMigrate(&models.Task{})
}
