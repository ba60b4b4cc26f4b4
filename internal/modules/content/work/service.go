package work

import (
	"errors"

	"gorm.io/gorm"

	"github.com/wahidu1/portfolio-core/internal/models"
)

// ErrNotFound is returned when a work does not exist.
var ErrNotFound = errors.New("work not found")

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// List returns all works in display order with technologies preloaded.
func (s *Service) List() ([]WorkDTO, error) {
	var rows []models.WorkModel
	err := s.db.Preload("Technologies").Order("sort_order ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	dtos := make([]WorkDTO, 0, len(rows))
	for _, m := range rows {
		dtos = append(dtos, toDTO(m))
	}
	return dtos, nil
}

// GetByID returns one work or ErrNotFound.
func (s *Service) GetByID(id uint) (*WorkDTO, error) {
	var row models.WorkModel
	err := s.db.Preload("Technologies").First(&row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	dto := toDTO(row)
	return &dto, nil
}
