package blog_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/modules/content/blog"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.BlogPostModel{}, &models.BlogCommentModel{}))

	r := gin.New()
	api := r.Group("/api/v1")
	blog.NewHandler(blog.NewService(db)).Register(api)
	return r, db
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func seedPosts(t *testing.T, db *gorm.DB) (published, draft models.BlogPostModel) {
	t.Helper()
	older := time.Now().Add(-48 * time.Hour)
	published = models.BlogPostModel{
		Title:       "Shipping Go Services",
		Excerpt:     "Lessons learned.",
		Content:     "Full article body.",
		Status:      models.PostPublished,
		PublishedAt: &older,
	}
	require.NoError(t, db.Create(&published).Error)

	draft = models.BlogPostModel{
		Title:   "Unfinished Thoughts",
		Content: "Not ready.",
		Status:  models.PostDraft,
	}
	require.NoError(t, db.Create(&draft).Error)
	return published, draft
}

func TestListShowsOnlyPublished(t *testing.T) {
	r, db := newTestRouter(t)
	published, _ := seedPosts(t, db)

	newer := models.BlogPostModel{
		Title:   "Fresh Post",
		Content: "New body.",
		Status:  models.PostPublished,
	}
	require.NoError(t, db.Create(&newer).Error)

	w := get(r, "/api/v1/blog/")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Results []blog.PostListDTO `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	// newest first
	require.Equal(t, "fresh-post", resp.Results[0].Slug)
	require.Equal(t, published.Slug, resp.Results[1].Slug)
	for _, p := range resp.Results {
		require.NotEqual(t, "unfinished-thoughts", p.Slug)
	}
}

func TestDetailBySlug(t *testing.T) {
	r, db := newTestRouter(t)
	published, _ := seedPosts(t, db)

	w := get(r, "/api/v1/blog/"+published.Slug+"/")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Results models.BlogPostModel `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Full article body.", resp.Results.Content)
}

func TestDetailHidesDrafts(t *testing.T) {
	r, db := newTestRouter(t)
	_, draft := seedPosts(t, db)

	w := get(r, "/api/v1/blog/"+draft.Slug+"/")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/api/v1/blog/no-such-post/")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentsLifecycle(t *testing.T) {
	r, db := newTestRouter(t)
	published, draft := seedPosts(t, db)

	// create
	w := httptest.NewRecorder()
	body := `{"name":"Reader","email":"reader@example.com","body":"Great write-up!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog/"+published.Slug+"/comments/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	// list
	w2 := get(r, "/api/v1/blog/"+published.Slug+"/comments/")
	require.Equal(t, http.StatusOK, w2.Code)
	var resp struct {
		Results []models.BlogCommentModel `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	require.Equal(t, "Great write-up!", resp.Results[0].Body)
	require.Equal(t, published.ID, resp.Results[0].PostID)

	// commenting on a draft behaves like a missing post
	w3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodPost, "/api/v1/blog/"+draft.Slug+"/comments/", strings.NewReader(body))
	req3.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w3, req3)
	require.Equal(t, http.StatusNotFound, w3.Code)
}

func TestCommentValidation(t *testing.T) {
	r, db := newTestRouter(t)
	published, _ := seedPosts(t, db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/blog/"+published.Slug+"/comments/",
		strings.NewReader(`{"name":"","email":"bad","body":""}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Results map[string]string `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Contains(t, resp.Results, "name")
	require.Contains(t, resp.Results, "email")
	require.Contains(t, resp.Results, "body")
}
