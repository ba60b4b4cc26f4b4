package models

// FAQModel is a frequently asked question.
type FAQModel struct {
	Base
	Question string `json:"question" gorm:"size:255;not null"`
	Answer   string `json:"answer"   gorm:"type:text"`
	Order    int    `json:"order"    gorm:"column:sort_order;default:0;index"`
}

func (FAQModel) TableName() string { return "faqs" }
