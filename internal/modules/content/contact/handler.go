package contact

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/modules/notify"
	"github.com/wahidu1/portfolio-core/internal/pkg/response"
	"github.com/wahidu1/portfolio-core/internal/pkg/taskqueue"
)

// Scheduler enqueues background tasks. Satisfied by taskqueue.Service.
type Scheduler interface {
	Enqueue(ctx context.Context, taskType string, payload interface{}) (*taskqueue.Task, error)
}

type Handler struct {
	db        *gorm.DB
	scheduler Scheduler
	logger    *zap.Logger
}

func NewHandler(db *gorm.DB, scheduler Scheduler, logger *zap.Logger) *Handler {
	return &Handler{db: db, scheduler: scheduler, logger: logger}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	g := r.Group("/contact")
	g.POST("/", h.Create)
	g.GET("/", h.List)
}

// Create accepts a contact form submission. The acknowledgment email task is
// scheduled before the message is persisted; a scheduling failure is logged
// and never surfaces to the submitter.
func (h *Handler) Create(c *gin.Context) {
	var dto CreateMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, response.FieldErrors(err))
		return
	}

	payload := notify.ContactAckPayload{
		Name:    dto.Name,
		Email:   dto.Email,
		Message: dto.Message,
	}
	if _, err := h.scheduler.Enqueue(c.Request.Context(), notify.TaskContactAck, payload); err != nil {
		h.logger.Error("failed to schedule contact acknowledgment",
			zap.String("email", dto.Email),
			zap.Error(err),
		)
	}

	msg := &models.ContactMessageModel{
		Name:    dto.Name,
		Email:   dto.Email,
		Message: dto.Message,
	}
	if err := h.db.Create(msg).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, msg)
}

// List returns stored contact messages, newest first.
func (h *Handler) List(c *gin.Context) {
	var rows []models.ContactMessageModel
	if err := h.db.Order("created_at DESC").Find(&rows).Error; err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}
