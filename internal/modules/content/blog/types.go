package blog

import (
	"time"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// PostListDTO is the list view of a post: no full content, just enough for a
// card or index page.
type PostListDTO struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Image       string     `json:"image"`
	PublishedAt *time.Time `json:"published_at"`
}

func toListDTO(m models.BlogPostModel) PostListDTO {
	return PostListDTO{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Image:       m.Image,
		PublishedAt: m.PublishedAt,
	}
}

// CreateCommentDTO is the payload for posting a comment.
type CreateCommentDTO struct {
	Name  string `json:"name" binding:"required,max=100"`
	Email string `json:"email" binding:"required,email,max=254"`
	Body  string `json:"body" binding:"required"`
}
