package database

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// defaultSettings are the keys every fresh installation starts with. Values
// already present are never overwritten.
var defaultSettings = []models.SettingModel{
	{Key: "facebook", Value: "https://facebook.com"},
	{Key: "twitter", Value: "https://twitter.com"},
	{Key: "linkedin", Value: "https://linkedin.com"},
	{Key: "github", Value: "https://github.com"},
	{Key: "email", Value: "contact@example.com"},
	{Key: "about", Value: "Write something about yourself."},
	{Key: "header", Value: "Welcome to my portfolio"},
	{Key: "highlightText", Value: "Developer"},
	{Key: "website_url", Value: "https://default.url"},
	{Key: "website_name", Value: "My Website"},
	{Key: "website_logo", Value: "/static/default_logo.png"},
}

// SeedDefaultSettings inserts the default setting rows, skipping keys that
// already exist.
func SeedDefaultSettings(db *gorm.DB) error {
	rows := make([]models.SettingModel, len(defaultSettings))
	copy(rows, defaultSettings)
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(&rows).Error
}
