package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Guests can book without an account; a valid token attaches the booking
	// to the caller's account.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthOptional(repo.Session, log))

		// POST /api/book - Book a specific vehicle
		r.Post("/api/book", bookingHandler.CreateBooking)

		// POST /api/book/direct - Book without choosing a vehicle
		r.Post("/api/book/direct", bookingHandler.CreateDirectBooking)
	})

	// GET /api/booking/{id} - Booking details
	r.Get("/api/booking/{id}", bookingHandler.GetBookingByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - List bookings, optional status filter
		r.Get("/", bookingHandler.GetBookings)

		// PUT /api/admin/bookings/{id}/status - Move booking through its lifecycle
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)

		// POST /api/admin/bookings/delete - Bulk delete
		r.Post("/delete", bookingHandler.DeleteBookings)
	})
}
