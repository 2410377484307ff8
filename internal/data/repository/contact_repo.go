package repository

import (
	"context"
	"fmt"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	FindAll(ctx context.Context, limit, offset int, unreadOnly bool) ([]*entity.ContactMessage, error)
	CountAll(ctx context.Context, unreadOnly bool) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type contactRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContactRepository(db database.PgxIface, log *zap.Logger) ContactRepository {
	return &contactRepository{
		db:  db,
		log: log.With(zap.String("repository", "contact")),
	}
}

func (r *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (id, name, email, subject, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		message.ID,
		message.Name,
		message.Email,
		message.Subject,
		message.Message,
		message.IsRead,
		message.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create contact message",
			zap.Error(err),
			zap.String("email", message.Email),
		)
		return fmt.Errorf("create contact message: %w", err)
	}

	return nil
}

func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
		WHERE id = $1
	`

	var message entity.ContactMessage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&message.ID,
		&message.Name,
		&message.Email,
		&message.Subject,
		&message.Message,
		&message.IsRead,
		&message.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find contact message",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return nil, fmt.Errorf("find contact message %s: %w", id.String(), err)
	}

	return &message, nil
}

func (r *contactRepository) FindAll(ctx context.Context, limit, offset int, unreadOnly bool) ([]*entity.ContactMessage, error) {
	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
		WHERE ($3 = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, unreadOnly)
	if err != nil {
		r.log.Error("Failed to find contact messages",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*entity.ContactMessage
	for rows.Next() {
		var message entity.ContactMessage
		err := rows.Scan(
			&message.ID,
			&message.Name,
			&message.Email,
			&message.Subject,
			&message.Message,
			&message.IsRead,
			&message.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan contact message row", zap.Error(err))
			return nil, fmt.Errorf("scan contact message row: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *contactRepository) CountAll(ctx context.Context, unreadOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM contact_messages WHERE ($1 = FALSE OR is_read = FALSE)`

	var count int64
	if err := r.db.QueryRow(ctx, query, unreadOnly).Scan(&count); err != nil {
		r.log.Error("Failed to count contact messages", zap.Error(err))
		return 0, fmt.Errorf("count contact messages: %w", err)
	}

	return count, nil
}

func (r *contactRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark contact message read",
			zap.Error(err),
			zap.String("message_id", id.String()),
		)
		return fmt.Errorf("mark contact message %s read: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("contact message %s not found", id.String())
	}

	return nil
}
