package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/model"
)

// Bootstrap creates the schema on first run and adds whatever is missing
// after an upgrade. gorm.AutoMigrate never drops columns or data.
func Bootstrap(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Transaction{},
	); err != nil {
		return fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return nil
}
