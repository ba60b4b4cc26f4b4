package settings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// Defaults used when a site setting row is missing.
const (
	DefaultSiteURL  = "https://default.url"
	DefaultSiteName = "My Website"
	DefaultSiteLogo = "/static/default_logo.png"
)

// SiteConfig is the typed view of the settings the mail templates need.
type SiteConfig struct {
	URL  string
	Name string
	Logo string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// All returns every setting row.
func (s *Service) All() ([]models.SettingModel, error) {
	var rows []models.SettingModel
	err := s.db.Find(&rows).Error
	return rows, err
}

// Files returns every uploaded setting file.
func (s *Service) Files() ([]models.SettingFileModel, error) {
	var rows []models.SettingFileModel
	err := s.db.Find(&rows).Error
	return rows, err
}

// Get looks up a single setting by key, returning fallback when the row is
// absent. Lookup errors other than not-found are returned.
func (s *Service) Get(key, fallback string) (string, error) {
	var row models.SettingModel
	err := s.db.Where("`key` = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fallback, nil
	}
	if err != nil {
		return fallback, err
	}
	return row.Value, nil
}

// Site resolves the site identity settings, falling back to defaults for any
// missing key.
func (s *Service) Site() SiteConfig {
	url, _ := s.Get("website_url", DefaultSiteURL)
	name, _ := s.Get("website_name", DefaultSiteName)
	logo, _ := s.Get("website_logo", DefaultSiteLogo)
	return SiteConfig{URL: url, Name: name, Logo: logo}
}
