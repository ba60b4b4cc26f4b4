package work

import (
	"time"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// WorkDTO is the API shape of a work. Technologies are flattened to their
// names.
type WorkDTO struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Subtext      string    `json:"subtext"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Technologies []string  `json:"technologies"`
	GithubLink   string    `json:"github_link"`
	LiveLink     string    `json:"live_link"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toDTO(m models.WorkModel) WorkDTO {
	techs := make([]string, 0, len(m.Technologies))
	for _, t := range m.Technologies {
		techs = append(techs, t.Name)
	}
	return WorkDTO{
		ID:           m.ID,
		Title:        m.Title,
		Subtext:      m.Subtext,
		Description:  m.Description,
		Image:        m.Image,
		Technologies: techs,
		GithubLink:   m.GithubLink,
		LiveLink:     m.LiveLink,
		Order:        m.Order,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
