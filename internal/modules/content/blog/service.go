package blog

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// ErrNotFound is returned when a published post with the given slug does not
// exist. Drafts are treated as absent.
var ErrNotFound = errors.New("post not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) published() *gorm.DB {
	return s.db.Where("status = ?", models.PostPublished)
}

// List returns published posts, newest first.
func (s *Service) List() ([]PostListDTO, error) {
	var rows []models.BlogPostModel
	err := s.published().Order("published_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]PostListDTO, 0, len(rows))
	for _, m := range rows {
		dtos = append(dtos, toListDTO(m))
	}
	return dtos, nil
}

// GetBySlug returns one published post or ErrNotFound.
func (s *Service) GetBySlug(slug string) (*models.BlogPostModel, error) {
	var row models.BlogPostModel
	err := s.published().Where("slug = ?", slug).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Comments returns a published post's comments, oldest first.
func (s *Service) Comments(slug string) ([]models.BlogCommentModel, error) {
	post, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	var rows []models.BlogCommentModel
	err = s.db.Where("post_id = ?", post.ID).Order("created_at ASC").Find(&rows).Error
	return rows, err
}

// AddComment attaches a comment to a published post.
func (s *Service) AddComment(slug string, dto CreateCommentDTO) (*models.BlogCommentModel, error) {
	post, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	comment := &models.BlogCommentModel{
		PostID: post.ID,
		Name:   dto.Name,
		Email:  dto.Email,
		Body:   dto.Body,
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}
