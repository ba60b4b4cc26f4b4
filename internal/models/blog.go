package models

import (
	"time"

	"gorm.io/gorm"
)

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
)

// BlogPostModel is a blog article.
type BlogPostModel struct {
	Base
	Title       string     `json:"title"        gorm:"size:200;not null"`
	Slug        string     `json:"slug"         gorm:"size:255;uniqueIndex;not null"`
	Excerpt     string     `json:"excerpt"      gorm:"type:text"`
	Content     string     `json:"content"      gorm:"type:longtext"`
	Image       string     `json:"image"`
	PublishedAt *time.Time `json:"published_at" gorm:"index"`
	Status      PostStatus `json:"status"       gorm:"size:10;default:'draft';index"`
}

func (BlogPostModel) TableName() string { return "blog_posts" }

// BeforeSave derives the slug from the title when absent and stamps
// PublishedAt on the first transition to published. A post that is already
// published keeps its original timestamp.
func (p *BlogPostModel) BeforeSave(*gorm.DB) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Status == PostPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}
	return nil
}

// BlogCommentModel is a reader comment, lifetime-bound to its post.
type BlogCommentModel struct {
	Base
	PostID uint           `json:"post_id" gorm:"index;not null"`
	Post   *BlogPostModel `json:"-"       gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Name   string         `json:"name"    gorm:"size:100;not null"`
	Email  string         `json:"email"   gorm:"size:254;not null"`
	Body   string         `json:"body"    gorm:"type:text;not null"`
}

func (BlogCommentModel) TableName() string { return "blog_comments" }
