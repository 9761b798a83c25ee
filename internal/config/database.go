package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"equihire/screening-engine/internal/logging"
	"equihire/screening-engine/internal/models"
)

// InitDatabase connects to Postgres and migrates the profile table. It returns
// (nil, nil) when no datastore is configured so callers can run without one.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	log := logging.GetLogger()

	if !cfg.Database.Enabled() {
		log.Warn("Datastore credentials missing. Profile updates are disabled.")
		return nil, nil
	}

	logLevel := logger.Silent
	if cfg.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info("✅ Database connected successfully")

	if err := db.AutoMigrate(&models.AnonymousProfile{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info("✅ Database migration completed")

	return db, nil
}
