package models_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.SkillModel{},
		&models.TestimonialModel{},
		&models.ExperienceModel{},
		&models.BlogPostModel{},
	))
	return db
}

func TestSkillPercentageClamped(t *testing.T) {
	db := newTestDB(t)

	over := models.SkillModel{Name: "Go", Percentage: 150}
	require.NoError(t, db.Create(&over).Error)
	require.Equal(t, 100, over.Percentage)

	under := models.SkillModel{Name: "Rust", Percentage: -10}
	require.NoError(t, db.Create(&under).Error)
	require.Equal(t, 0, under.Percentage)
}

func TestTestimonialRatingClamped(t *testing.T) {
	db := newTestDB(t)

	over := models.TestimonialModel{ClientName: "A", Rating: 9}
	require.NoError(t, db.Create(&over).Error)
	require.Equal(t, 5, over.Rating)

	under := models.TestimonialModel{ClientName: "B", Rating: 0}
	require.NoError(t, db.Create(&under).Error)
	require.Equal(t, 1, under.Rating)
}

func TestExperienceRejectsEndBeforeStart(t *testing.T) {
	db := newTestDB(t)

	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -3, 0)
	exp := models.ExperienceModel{Title: "Engineer", StartDate: start, EndDate: &end}
	err := db.Create(&exp).Error
	require.ErrorIs(t, err, models.ErrEndBeforeStart)

	// nil end date means the position is current and is always valid.
	current := models.ExperienceModel{Title: "Engineer", StartDate: start}
	require.NoError(t, db.Create(&current).Error)
}

func TestBlogPostSlugDerivedFromTitle(t *testing.T) {
	db := newTestDB(t)

	post := models.BlogPostModel{Title: "Hello World"}
	require.NoError(t, db.Create(&post).Error)
	require.Equal(t, "hello-world", post.Slug)

	// an explicit slug is never overwritten
	custom := models.BlogPostModel{Title: "Another Post", Slug: "custom-slug"}
	require.NoError(t, db.Create(&custom).Error)
	require.Equal(t, "custom-slug", custom.Slug)
}

func TestBlogPostPublishedAtStampedOnce(t *testing.T) {
	db := newTestDB(t)

	post := models.BlogPostModel{Title: "Draft First", Status: models.PostDraft}
	require.NoError(t, db.Create(&post).Error)
	require.Nil(t, post.PublishedAt)

	post.Status = models.PostPublished
	require.NoError(t, db.Save(&post).Error)
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt

	post.Excerpt = "edited later"
	require.NoError(t, db.Save(&post).Error)
	require.NotNil(t, post.PublishedAt)
	require.True(t, post.PublishedAt.Equal(first))
}
