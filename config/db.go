package config

import (
	"fmt"

	"github.com/AnoopG7/Day-Tracker-sub001/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates the schema. TranslateError is on
// so unique-index violations surface as gorm.ErrDuplicatedKey; the services
// rely on that to report conflicts instead of guessing from a pre-write read.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.DayLog{},
		&models.CustomActivityInstance{},
		&models.ActivityTemplate{},
		&models.NutritionEntry{},
		&models.ExpenseEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("auto-migrate failed: %w", err)
	}
	return db, nil
}
