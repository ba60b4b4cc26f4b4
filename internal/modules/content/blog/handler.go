package blog

import (
	"errors"

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
	g := r.Group("/blog")
	g.GET("/", h.List)
	g.GET("/:slug/", h.Detail)
	g.GET("/:slug/comments/", h.ListComments)
	g.POST("/:slug/comments/", h.CreateComment)
}

// List returns published posts, newest first.
func (h *Handler) List(c *gin.Context) {
	dtos, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, dtos)
}

// Detail returns a single published post by slug. Drafts are invisible here.
func (h *Handler) Detail(c *gin.Context) {
	post, err := h.svc.GetBySlug(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, post)
}

// ListComments returns a published post's comments.
func (h *Handler) ListComments(c *gin.Context) {
	rows, err := h.svc.Comments(c.Param("slug"))
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, rows)
}

// CreateComment validates and stores a new comment on a published post.
func (h *Handler) CreateComment(c *gin.Context) {
	var dto CreateCommentDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, response.FieldErrors(err))
		return
	}

	comment, err := h.svc.AddComment(c.Param("slug"), dto)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Post not found")
		return
	}
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, comment)
}
