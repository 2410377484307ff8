package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidDateRange - start date not strictly before end date.
	ErrInvalidDateRange = errors.New("invalid date range: end date must be after start date")
	// ErrVehicleUnavailable - an overlapping pending or confirmed booking exists.
	ErrVehicleUnavailable = errors.New("vehicle is not available for the selected dates")
)

// AvailabilityService answers whether vehicles are bookable for a date
// range. Conflicts use the inclusive interval test (a booking ending the
// day another starts still conflicts) and only pending/confirmed bookings
// count; cancelled and completed bookings free the vehicle.
type AvailabilityService interface {
	HasConflict(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error)
	FilterAvailable(ctx context.Context, vehicles []*entity.Vehicle, start, end time.Time, vehicleType *entity.VehicleType, minCapacity *int) ([]*entity.Vehicle, error)
	ValidateBookingRequest(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) error
}

type availabilityService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewAvailabilityService(bookings repository.BookingRepository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		bookings: bookings,
		log:      log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) HasConflict(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) (bool, error) {
	overlapping, err := s.bookings.FindOverlapping(ctx, vehicleID, start, end, entity.BlockingStatuses)
	if err != nil {
		s.log.Error("Failed to check booking conflicts",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return false, fmt.Errorf("check conflicts for vehicle %s: %w", vehicleID.String(), err)
	}

	return len(overlapping) > 0, nil
}

func (s *availabilityService) FilterAvailable(ctx context.Context, vehicles []*entity.Vehicle, start, end time.Time, vehicleType *entity.VehicleType, minCapacity *int) ([]*entity.Vehicle, error) {
	// Cheap independent predicates first, then one batch conflict query
	// for the whole date range instead of a per-vehicle scan.
	candidates := make([]*entity.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		if vehicleType != nil && vehicle.VehicleType != *vehicleType {
			continue
		}
		if minCapacity != nil && vehicle.Capacity < *minCapacity {
			continue
		}
		candidates = append(candidates, vehicle)
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	bookedIDs, err := s.bookings.FindVehicleIDsOverlapping(ctx, start, end, entity.BlockingStatuses)
	if err != nil {
		s.log.Error("Failed to load booked vehicle IDs",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("load booked vehicle IDs: %w", err)
	}

	booked := make(map[uuid.UUID]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	available := candidates[:0]
	for _, vehicle := range candidates {
		if _, taken := booked[vehicle.ID]; taken {
			continue
		}
		available = append(available, vehicle)
	}

	return available, nil
}

func (s *availabilityService) ValidateBookingRequest(ctx context.Context, vehicleID uuid.UUID, start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidDateRange
	}

	conflict, err := s.HasConflict(ctx, vehicleID, start, end)
	if err != nil {
		return err
	}
	if conflict {
		return ErrVehicleUnavailable
	}

	return nil
}

// computeTotalPrice applies the pricing rule: an explicitly supplied
// non-zero total wins; otherwise price_per_day times whole days, never
// negative. Direct bookings without a vehicle always cost zero.
func computeTotalPrice(vehicle *entity.Vehicle, start, end time.Time, override float64) float64 {
	if override != 0 {
		return override
	}
	if vehicle == nil {
		return 0
	}
	return vehicle.PricePerDay * float64(entity.RentalDays(start, end))
}
