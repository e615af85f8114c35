package repository

import (
	"errors"

	"github.com/farellandr/promptbox/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the categories and prompts tables.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return errors.New("db connection is nil")
	}
	return db.AutoMigrate(&models.Category{}, &models.Prompt{})
}
