package db

import (
	"github.com/crewdeck-dev/crewdeck/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection the GormStore runs on.
func Connect(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// Migrate creates the dashboard tables that do not exist yet.
func Migrate(db *gorm.DB) error {
	tables := []interface{}{
		&models.TeamMember{},
		&models.Task{},
		&models.Upload{},
	}

	migrator := db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
