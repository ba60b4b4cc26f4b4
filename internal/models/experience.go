package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrEndBeforeStart = errors.New("end_date precedes start_date")

// ExperienceModel is a work-history entry. EndDate is nil for the current
// position.
type ExperienceModel struct {
	Base
	Title       string     `json:"title"       gorm:"size:100;not null"`
	Company     string     `json:"company"     gorm:"size:100"`
	Description string     `json:"description" gorm:"type:text"`
	StartDate   time.Time  `json:"start_date"  gorm:"type:date"`
	EndDate     *time.Time `json:"end_date"    gorm:"type:date"`
	Order       int        `json:"order"       gorm:"column:sort_order;default:0;index"`
}

func (ExperienceModel) TableName() string { return "experiences" }

// BeforeSave rejects an end date earlier than the start date.
func (e *ExperienceModel) BeforeSave(*gorm.DB) error {
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}
