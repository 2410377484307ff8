package adaptor

import (
	"vehicle-rental/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Vehicle *VehicleHandler
	Booking *BookingHandler
	Contact *ContactHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Vehicle: NewVehicleHandler(service.Vehicle, log),
		Booking: NewBookingHandler(service.Booking, log),
		Contact: NewContactHandler(service.Contact, log),
	}
}
