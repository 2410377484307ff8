package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/dto/response"
	"vehicle-rental/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ContactService interface {
	CreateMessage(ctx context.Context, req *request.ContactMessageRequest) (*response.ContactCreatedResponse, error)

	// Admin endpoints
	GetMessages(ctx context.Context, req *request.PaginatedRequest, unreadOnly bool) (*response.PaginatedResponse[response.ContactMessageResponse], error)
	MarkMessageRead(ctx context.Context, messageID string) error
}

type contactService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewContactService(repo *repository.Repository, log *zap.Logger) ContactService {
	return &contactService{
		repo: repo,
		log:  log.With(zap.String("service", "contact")),
	}
}

func (s *contactService) CreateMessage(ctx context.Context, req *request.ContactMessageRequest) (*response.ContactCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Contact message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	message := &entity.ContactMessage{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		IsRead:  false,
	}

	if err := s.repo.Contact.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}

	s.log.Info("Contact message received",
		zap.String("message_id", message.ID.String()),
		zap.String("email", message.Email),
	)

	return &response.ContactCreatedResponse{
		ID:      message.ID.String(),
		Message: "Thank you for your message! We will get back to you soon.",
	}, nil
}

func (s *contactService) GetMessages(ctx context.Context, req *request.PaginatedRequest, unreadOnly bool) (*response.PaginatedResponse[response.ContactMessageResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	messages, err := s.repo.Contact.FindAll(ctx, limit, offset, unreadOnly)
	if err != nil {
		s.log.Error("Failed to get contact messages",
			zap.Error(err),
			zap.Int("page", req.Page),
		)
		return nil, fmt.Errorf("get contact messages: %w", err)
	}

	total, err := s.repo.Contact.CountAll(ctx, unreadOnly)
	if err != nil {
		s.log.Error("Failed to count contact messages", zap.Error(err))
		return nil, fmt.Errorf("count contact messages: %w", err)
	}

	messageResponses := make([]response.ContactMessageResponse, len(messages))
	for i, message := range messages {
		messageResponses[i] = response.ContactMessageToResponse(message)
	}

	return response.NewPaginatedResponse(messageResponses, req.Page, req.PerPage, total), nil
}

func (s *contactService) MarkMessageRead(ctx context.Context, messageID string) error {
	id, err := uuid.Parse(messageID)
	if err != nil {
		return fmt.Errorf("invalid message ID format %s: %w", messageID, err)
	}

	if err := s.repo.Contact.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark message %s read: %w", messageID, err)
	}

	s.log.Info("Contact message marked read", zap.String("message_id", messageID))
	return nil
}
