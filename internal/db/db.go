// Package db provides database connectivity and migrations
package db

import (
	"fmt"
	stdlog "log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trabajitos-sv/trabajitos-api/internal/db/models"
)

// New opens a postgres connection, runs migrations and seeds the status
// taxonomy.
func New(dsn string) (*gorm.DB, error) {
	// Ignore record-not-found noise: scoped lookups miss on purpose.
	newLogger := gormlogger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		gormlogger.Config{
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedStatuses(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the schema migrations for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Status{},
		&models.Category{},
		&models.Municipality{},
		&models.Trabajito{},
		&models.BillLine{},
		&models.Portfolio{},
		&models.Review{},
	)
}

// SeedStatuses ensures the default status taxonomy exists. Lifecycle
// endpoints take status ids from clients, so the entries must be present
// before the first trabajito is created.
func SeedStatuses(db *gorm.DB) error {
	for _, name := range models.DefaultStatuses {
		status := models.Status{Name: name}
		if err := db.Where(models.Status{Name: name}).FirstOrCreate(&status).Error; err != nil {
			return fmt.Errorf("failed to seed status %q: %w", name, err)
		}
	}
	return nil
}
