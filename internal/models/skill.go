package models

import "gorm.io/gorm"

// SkillModel is a single skill bar on the portfolio front page.
type SkillModel struct {
	Base
	Name       string `json:"name"       gorm:"size:100;not null"`
	Icon       string `json:"icon"`
	Percentage int    `json:"percentage" gorm:"default:0"`
	Order      int    `json:"order"      gorm:"column:sort_order;default:0;index"`
}

func (SkillModel) TableName() string { return "skills" }

// BeforeSave clamps percentage into [0, 100].
func (s *SkillModel) BeforeSave(*gorm.DB) error {
	if s.Percentage > 100 {
		s.Percentage = 100
	}
	if s.Percentage < 0 {
		s.Percentage = 0
	}
	return nil
}
