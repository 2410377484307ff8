package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireContact(
	r chi.Router,
	contactHandler *adaptor.ContactHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/contact - Submit a contact message
	r.Post("/api/contact", contactHandler.CreateMessage)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/contact-messages", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", contactHandler.GetMessages)
		r.Put("/{id}/read", contactHandler.MarkMessageRead)
	})
}
