package usecase

import (
	"context"
	"errors"
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

type BookingService interface {
	// Public endpoints
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CreateDirectBooking(ctx context.Context, userID string, req *request.DirectBookingRequest) (*response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	GetBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error)
	UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	DeleteBookings(ctx context.Context, req *request.DeleteBookingsRequest) (int64, error)
}

type bookingService struct {
	repo         *repository.Repository
	availability AvailabilityService
	log          *zap.Logger
}

func NewBookingService(repo *repository.Repository, availability AvailabilityService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		log:          log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	vehicleID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// Vehicle must exist and be owner-enabled
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("load vehicle %s: %w", req.VehicleID, err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", req.VehicleID)
	}
	if !vehicle.IsAvailable {
		return nil, ErrVehicleUnavailable
	}

	// Pure pre-check; the guarded insert below re-checks inside a
	// per-vehicle transaction so concurrent submissions cannot both win.
	if err := s.availability.ValidateBookingRequest(ctx, vehicleID, startDate, endDate); err != nil {
		return nil, err
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        parseOptionalUserID(userID),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		StartDate:     startDate,
		EndDate:       endDate,
		VehicleID:     &vehicleID,
		TotalPrice:    computeTotalPrice(vehicle, startDate, endDate, 0),
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.CreateChecked(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrBookingConflict) {
			return nil, ErrVehicleUnavailable
		}
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("vehicle_id", req.VehicleID),
			zap.String("customer_email", req.CustomerEmail),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("vehicle_id", vehicleID.String()),
		zap.String("customer_email", booking.CustomerEmail),
		zap.Float64("total_price", booking.TotalPrice),
	)

	// Best-effort notification; failures never affect the booking.
	go s.notifyBookingCreated(booking, vehicle)

	resp := response.BookingToResponse(booking, vehicle)
	return &resp, nil
}

func (s *bookingService) CreateDirectBooking(ctx context.Context, userID string, req *request.DirectBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create direct booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if !startDate.Before(endDate) {
		return nil, ErrInvalidDateRange
	}

	// No vehicle yet: zero price, forced pending, assigned manually later.
	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        parseOptionalUserID(userID),
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		StartDate:     startDate,
		EndDate:       endDate,
		VehicleID:     nil,
		TotalPrice:    computeTotalPrice(nil, startDate, endDate, 0),
		Status:        entity.BookingStatusPending,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create direct booking",
			zap.Error(err),
			zap.String("customer_email", req.CustomerEmail),
		)
		return nil, fmt.Errorf("create direct booking: %w", err)
	}

	s.log.Info("Direct booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_email", booking.CustomerEmail),
	)

	go s.notifyBookingCreated(booking, nil)

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	resp := response.BookingToResponse(booking, s.loadVehicle(ctx, booking.VehicleID))
	return &resp, nil
}

func (s *bookingService) GetBookings(ctx context.Context, req *request.PaginatedRequest, status *string) (*response.PaginatedResponse[response.BookingResponse], error) {
	var statusFilter *entity.BookingStatus
	if status != nil {
		parsed := entity.BookingStatus(*status)
		if !parsed.Valid() {
			return nil, fmt.Errorf("invalid booking status %s", *status)
		}
		statusFilter = &parsed
	}

	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindAll(ctx, limit, offset, statusFilter)
	if err != nil {
		s.log.Error("Failed to get bookings",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking, s.loadVehicle(ctx, booking.VehicleID))
	}

	s.log.Info("Bookings retrieved",
		zap.Int("count", len(bookings)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingID)
	}

	next := entity.BookingStatus(req.Status)
	if !booking.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot change booking status from %s to %s", booking.Status, next)
	}

	if err := s.repo.Booking.UpdateStatus(ctx, id, next); err != nil {
		s.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID),
			zap.String("status", req.Status),
		)
		return nil, fmt.Errorf("update booking %s status: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", req.Status),
	)

	booking.Status = next
	booking.UpdatedAt = time.Now()

	resp := response.BookingToResponse(booking, s.loadVehicle(ctx, booking.VehicleID))
	return &resp, nil
}

func (s *bookingService) DeleteBookings(ctx context.Context, req *request.DeleteBookingsRequest) (int64, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return 0, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ids := make([]uuid.UUID, len(req.IDs))
	for i, idStr := range req.IDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return 0, fmt.Errorf("invalid booking ID format %s: %w", idStr, err)
		}
		ids[i] = id
	}

	deleted, err := s.repo.Booking.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete bookings: %w", err)
	}

	return deleted, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) loadVehicle(ctx context.Context, vehicleID *uuid.UUID) *entity.Vehicle {
	if vehicleID == nil {
		return nil
	}
	vehicle, err := s.repo.Vehicle.FindByID(ctx, *vehicleID)
	if err != nil {
		s.log.Warn("Failed to load vehicle for booking response",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil
	}
	return vehicle
}

// notifyBookingCreated dispatches the customer notification. Delivery is
// fire-and-forget; a failure here must never roll back the booking.
func (s *bookingService) notifyBookingCreated(booking *entity.Booking, vehicle *entity.Vehicle) {
	fields := []zap.Field{
		zap.String("booking_id", booking.ID.String()),
		zap.String("customer_email", booking.CustomerEmail),
		zap.String("start_date", booking.StartDate.Format("2006-01-02")),
		zap.String("end_date", booking.EndDate.Format("2006-01-02")),
	}
	if vehicle != nil {
		fields = append(fields, zap.String("vehicle", vehicle.Name))
	}
	s.log.Info("Booking confirmation queued", fields...)
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse("2006-01-02", start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %s: %w", start, err)
	}
	endDate, err := time.Parse("2006-01-02", end)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %s: %w", end, err)
	}
	return startDate, endDate, nil
}

func parseOptionalUserID(userID string) *uuid.UUID {
	if userID == "" {
		return nil
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil
	}
	return &id
}
