package contact

// CreateMessageDTO is the contact form payload.
type CreateMessageDTO struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Message string `json:"message" binding:"required"`
}
