package models

import "time"

// AchievementModel is a certificate or award entry.
type AchievementModel struct {
	Base
	Title        string    `json:"title"        gorm:"size:100;not null"`
	Organization string    `json:"organization" gorm:"size:100"`
	Image        string    `json:"image"`
	Date         time.Time `json:"date"         gorm:"type:date"`
	Order        int       `json:"order"        gorm:"column:sort_order;default:0;index"`
}

func (AchievementModel) TableName() string { return "achievements" }
