package settings

import (
	"github.com/gin-gonic/gin"

	"github.com/wahidu1/portfolio-core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r *gin.RouterGroup) {
	g := r.Group("/settings")
	g.GET("/", h.List)
	g.GET("/files/", h.ListFiles)
}

// List returns every site setting.
func (h *Handler) List(c *gin.Context) {
	rows, err := h.svc.All()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}

// ListFiles returns every uploaded setting file.
func (h *Handler) ListFiles(c *gin.Context) {
	rows, err := h.svc.Files()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}
