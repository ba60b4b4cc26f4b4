package testimonial

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/pkg/response"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	r.GET("/testimonials/", h.List)
}

// List returns all testimonials in display order.
func (h *Handler) List(c *gin.Context) {
	var rows []models.TestimonialModel
	if err := h.db.Order("sort_order ASC").Find(&rows).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}
