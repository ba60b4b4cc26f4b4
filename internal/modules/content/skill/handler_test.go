package skill_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/modules/content/skill"
)

func TestListOrderedByDisplayOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SkillModel{}))

	require.NoError(t, db.Create(&models.SkillModel{Name: "MySQL", Order: 3}).Error)
	require.NoError(t, db.Create(&models.SkillModel{Name: "Go", Order: 1}).Error)
	require.NoError(t, db.Create(&models.SkillModel{Name: "Redis", Order: 2}).Error)

	r := gin.New()
	api := r.Group("/api/v1")
	skill.NewHandler(db).Register(api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/skills/", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Message string              `json:"message"`
		Results []models.SkillModel `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Operation successful", resp.Message)
	require.Len(t, resp.Results, 3)
	require.Equal(t, "Go", resp.Results[0].Name)
	require.Equal(t, "Redis", resp.Results[1].Name)
	require.Equal(t, "MySQL", resp.Results[2].Name)
}
