package database

import (
	"fmt"

	"github.com/anjiri1684/cyber_evolve/models"
	"gorm.io/gorm"
)

// Migrate creates the questions and tips tables when absent. Existing tables
// are left exactly as they are.
func Migrate(db *gorm.DB) error {
	for _, model := range []interface{}{&models.Question{}, &models.Tip{}} {
		if db.Migrator().HasTable(model) {
			continue
		}
		if err := db.Migrator().CreateTable(model); err != nil {
			return fmt.Errorf("create table for %T: %w", model, err)
		}
	}
	return nil
}
