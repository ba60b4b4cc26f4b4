package models

// ContactMessageModel is an inbound message from the contact form.
// Rows are write-once from the API; only an administrator edits them later.
type ContactMessageModel struct {
	Base
	Name    string `json:"name"    gorm:"size:100;not null"`
	Email   string `json:"email"   gorm:"size:254;not null"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (ContactMessageModel) TableName() string { return "contact_messages" }
