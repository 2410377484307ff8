package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactCreatedResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func ContactMessageToResponse(message *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		IsRead:    message.IsRead,
		CreatedAt: message.CreatedAt,
	}
}
