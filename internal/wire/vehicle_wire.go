package wire

import (
	"vehicle-rental/internal/adaptor"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/middleware"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vehicles - List available vehicles
	r.Get("/api/vehicles", vehicleHandler.GetVehicles)

	// POST /api/search - Search vehicles free for a date range
	r.Post("/api/search", vehicleHandler.Search)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/vehicles", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Get("/", vehicleHandler.GetAllVehicles)
		r.Post("/", vehicleHandler.CreateVehicle)
		r.Get("/{id}", vehicleHandler.GetVehicleByID)
		r.Put("/{id}", vehicleHandler.UpdateVehicle)
		r.Delete("/{id}", vehicleHandler.DeleteVehicle)
	})
}
