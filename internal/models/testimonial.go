package models

import "gorm.io/gorm"

// TestimonialModel is a client testimonial with a 1-5 star rating.
type TestimonialModel struct {
	Base
	ClientName  string `json:"client_name"  gorm:"size:100;not null"`
	Feedback    string `json:"feedback"     gorm:"type:text"`
	Rating      int    `json:"rating"       gorm:"default:5"`
	ClientPhoto string `json:"client_photo"`
	Order       int    `json:"order"        gorm:"column:sort_order;default:0;index"`
}

func (TestimonialModel) TableName() string { return "testimonials" }

// BeforeSave clamps rating into [1, 5].
func (t *TestimonialModel) BeforeSave(*gorm.DB) error {
	if t.Rating > 5 {
		t.Rating = 5
	}
	if t.Rating < 1 {
		t.Rating = 1
	}
	return nil
}
