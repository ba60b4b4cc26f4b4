package database

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/config"
	"github.com/wahidu1/portfolio-core/internal/models"
)

// Connect opens the MySQL connection, tunes the pool and runs migrations.
func Connect(cfg *config.AppConfig) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDev() {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSNValue()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate auto-migrates every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SkillModel{},
		&models.TechnologyModel{},
		&models.WorkModel{},
		&models.AchievementModel{},
		&models.ExperienceModel{},
		&models.TestimonialModel{},
		&models.FAQModel{},
		&models.ContactMessageModel{},
		&models.BlogPostModel{},
		&models.BlogCommentModel{},
		&models.SettingModel{},
		&models.SettingFileModel{},
	)
}
