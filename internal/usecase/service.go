package usecase

import (
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Availability AvailabilityService
	Vehicle      VehicleService
	Booking      BookingService
	Contact      ContactService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	availability := NewAvailabilityService(repo.Booking, log)

	return &Service{
		Auth:         NewAuthService(repo, config, log),
		Availability: availability,
		Vehicle:      NewVehicleService(repo, availability, log),
		Booking:      NewBookingService(repo, availability, log),
		Contact:      NewContactService(repo, log),
	}
}
