package work

import (
	"errors"
	"strconv"

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
	g := r.Group("/works")
	g.GET("/", h.List)
	g.GET("/:id/", h.Detail)
}

// List returns all works.
func (h *Handler) List(c *gin.Context) {
	dtos, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, dtos)
}

// Detail returns a single work by numeric id.
func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Work not found")
		return
	}

	dto, err := h.svc.GetByID(uint(id))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Work not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, dto)
}
