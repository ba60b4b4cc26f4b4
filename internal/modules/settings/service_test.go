package settings_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/database"
	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/modules/settings"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SettingModel{}, &models.SettingFileModel{}))
	return db
}

func TestGetFallsBackWhenMissing(t *testing.T) {
	svc := settings.NewService(newTestDB(t))

	val, err := svc.Get("website_url", settings.DefaultSiteURL)
	require.NoError(t, err)
	require.Equal(t, "https://default.url", val)
}

func TestSiteUsesStoredValues(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.SettingModel{Key: "website_name", Value: "Wahid's Portfolio"}).Error)

	site := settings.NewService(db).Site()
	require.Equal(t, "Wahid's Portfolio", site.Name)
	require.Equal(t, settings.DefaultSiteURL, site.URL)
	require.Equal(t, settings.DefaultSiteLogo, site.Logo)
}

func TestSeedDefaultSettingsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.SettingModel{Key: "website_name", Value: "Custom"}).Error)
	require.NoError(t, database.SeedDefaultSettings(db))
	require.NoError(t, database.SeedDefaultSettings(db))

	svc := settings.NewService(db)
	val, err := svc.Get("website_name", "")
	require.NoError(t, err)
	require.Equal(t, "Custom", val)

	rows, err := svc.All()
	require.NoError(t, err)
	require.Len(t, rows, 11)
}
