package request

type ContactMessageRequest struct {
	Name    string  `json:"name" validate:"required,min=1,max=100"`
	Email   string  `json:"email" validate:"required,email"`
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=255"`
	Message string  `json:"message" validate:"required,min=1"`
}
