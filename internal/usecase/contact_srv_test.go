package usecase

import (
	"context"
	"testing"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newContactService(contactRepo *mockContactRepo) ContactService {
	return NewContactService(&repository.Repository{Contact: contactRepo}, testLogger())
}

func TestCreateMessage_Success(t *testing.T) {
	var created *entity.ContactMessage
	contactRepo := &mockContactRepo{
		createFn: func(ctx context.Context, message *entity.ContactMessage) error {
			created = message
			return nil
		},
	}

	svc := newContactService(contactRepo)

	subject := "Rental inquiry"
	resp, err := svc.CreateMessage(context.Background(), &request.ContactMessageRequest{
		Name:    "Siti Aminah",
		Email:   "siti@example.com",
		Subject: &subject,
		Message: "Do you have vans available next weekend?",
	})

	assert.NoError(t, err)
	assert.False(t, created.IsRead)
	assert.Equal(t, "Thank you for your message! We will get back to you soon.", resp.Message)
	assert.Equal(t, created.ID.String(), resp.ID)
}

func TestCreateMessage_ValidationFailure(t *testing.T) {
	svc := newContactService(&mockContactRepo{})

	_, err := svc.CreateMessage(context.Background(), &request.ContactMessageRequest{
		Name:  "Siti Aminah",
		Email: "not-an-email",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestMarkMessageRead(t *testing.T) {
	var markedID uuid.UUID
	contactRepo := &mockContactRepo{
		markReadFn: func(ctx context.Context, id uuid.UUID) error {
			markedID = id
			return nil
		},
	}

	svc := newContactService(contactRepo)

	id := uuid.New()
	err := svc.MarkMessageRead(context.Background(), id.String())

	assert.NoError(t, err)
	assert.Equal(t, id, markedID)
}

func TestMarkMessageRead_InvalidID(t *testing.T) {
	svc := newContactService(&mockContactRepo{})

	err := svc.MarkMessageRead(context.Background(), "not-a-uuid")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid message ID")
}
