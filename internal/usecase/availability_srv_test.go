package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHasConflict_InclusiveBoundary(t *testing.T) {
	vehicleID := uuid.New()
	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(vehicleID, day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusConfirmed),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	// Range starting the day the existing booking ends conflicts
	conflict, err := svc.HasConflict(context.Background(), vehicleID, day(2026, time.June, 15), day(2026, time.June, 20))
	assert.NoError(t, err)
	assert.True(t, conflict)

	// One day later is free
	conflict, err = svc.HasConflict(context.Background(), vehicleID, day(2026, time.June, 16), day(2026, time.June, 20))
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_TerminalStatusesNeverBlock(t *testing.T) {
	vehicleID := uuid.New()
	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(vehicleID, day(2026, time.July, 1), day(2026, time.July, 5), entity.BookingStatusCancelled),
		bookingFor(vehicleID, day(2026, time.July, 1), day(2026, time.July, 5), entity.BookingStatusCompleted),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	conflict, err := svc.HasConflict(context.Background(), vehicleID, day(2026, time.July, 2), day(2026, time.July, 4))
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_OtherVehicleDoesNotBlock(t *testing.T) {
	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(uuid.New(), day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusPending),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	conflict, err := svc.HasConflict(context.Background(), uuid.New(), day(2026, time.June, 12), day(2026, time.June, 14))
	assert.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasConflict_RepoError(t *testing.T) {
	repo := &mockBookingRepo{
		findOverlappingFn: func(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error) {
			return nil, errors.New("db connection failed")
		},
	}

	svc := NewAvailabilityService(repo, testLogger())

	_, err := svc.HasConflict(context.Background(), uuid.New(), day(2026, time.June, 1), day(2026, time.June, 2))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "db connection failed")
}

func TestValidateBookingRequest_InvalidDateRange(t *testing.T) {
	svc := NewAvailabilityService(&mockBookingRepo{}, testLogger())

	// start == end
	err := svc.ValidateBookingRequest(context.Background(), uuid.New(), day(2026, time.June, 10), day(2026, time.June, 10))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// start > end
	err = svc.ValidateBookingRequest(context.Background(), uuid.New(), day(2026, time.June, 12), day(2026, time.June, 10))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestValidateBookingRequest_Conflict(t *testing.T) {
	vehicleID := uuid.New()
	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(vehicleID, day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusPending),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	err := svc.ValidateBookingRequest(context.Background(), vehicleID, day(2026, time.June, 14), day(2026, time.June, 18))
	assert.ErrorIs(t, err, ErrVehicleUnavailable)
}

func TestValidateBookingRequest_OK(t *testing.T) {
	svc := NewAvailabilityService((&bookingStore{}).repo(), testLogger())

	err := svc.ValidateBookingRequest(context.Background(), uuid.New(), day(2026, time.June, 10), day(2026, time.June, 12))
	assert.NoError(t, err)
}

func TestFilterAvailable_RemovesConflicted(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	van := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)
	bus := vehicleWith("Big Bus", entity.VehicleTypeBus, 40, 3000)

	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(van.ID, day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusConfirmed),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	available, err := svc.FilterAvailable(context.Background(),
		[]*entity.Vehicle{car, van, bus},
		day(2026, time.June, 12), day(2026, time.June, 14), nil, nil)

	assert.NoError(t, err)
	assert.Len(t, available, 2)
	assert.Equal(t, car.ID, available[0].ID)
	assert.Equal(t, bus.ID, available[1].ID)
}

func TestFilterAvailable_NoBookingsReturnsAll(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	van := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)

	svc := NewAvailabilityService((&bookingStore{}).repo(), testLogger())

	available, err := svc.FilterAvailable(context.Background(),
		[]*entity.Vehicle{car, van},
		day(2026, time.June, 1), day(2026, time.June, 5), nil, nil)

	assert.NoError(t, err)
	assert.Len(t, available, 2)
	// Input order preserved
	assert.Equal(t, car.ID, available[0].ID)
	assert.Equal(t, van.ID, available[1].ID)
}

func TestFilterAvailable_TypeAndCapacityFilters(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	smallVan := vehicleWith("Small Van", entity.VehicleTypeVan, 8, 900)
	bigVan := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)

	svc := NewAvailabilityService((&bookingStore{}).repo(), testLogger())

	vanType := entity.VehicleTypeVan
	minCapacity := 10
	available, err := svc.FilterAvailable(context.Background(),
		[]*entity.Vehicle{car, smallVan, bigVan},
		day(2026, time.June, 1), day(2026, time.June, 5), &vanType, &minCapacity)

	assert.NoError(t, err)
	assert.Len(t, available, 1)
	assert.Equal(t, bigVan.ID, available[0].ID)
}

func TestFilterAvailable_NoCandidatesSkipsConflictQuery(t *testing.T) {
	queried := false
	repo := &mockBookingRepo{
		findVehicleIDsOverlappingFn: func(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error) {
			queried = true
			return nil, nil
		},
	}

	svc := NewAvailabilityService(repo, testLogger())

	busType := entity.VehicleTypeBus
	available, err := svc.FilterAvailable(context.Background(),
		[]*entity.Vehicle{vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)},
		day(2026, time.June, 1), day(2026, time.June, 5), &busType, nil)

	assert.NoError(t, err)
	assert.Empty(t, available)
	assert.False(t, queried)
}

func TestFilterAvailable_Idempotent(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	van := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)

	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(van.ID, day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusPending),
	}}

	svc := NewAvailabilityService(store.repo(), testLogger())

	start, end := day(2026, time.June, 12), day(2026, time.June, 14)
	first, err := svc.FilterAvailable(context.Background(), []*entity.Vehicle{car, van}, start, end, nil, nil)
	assert.NoError(t, err)

	second, err := svc.FilterAvailable(context.Background(), first, start, end, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComputeTotalPrice(t *testing.T) {
	vehicle := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 1500)

	// 3 whole days at 1500/day
	price := computeTotalPrice(vehicle, day(2026, time.June, 10), day(2026, time.June, 13), 0)
	assert.Equal(t, 4500.0, price)

	// Explicit override wins
	price = computeTotalPrice(vehicle, day(2026, time.June, 10), day(2026, time.June, 13), 9999)
	assert.Equal(t, 9999.0, price)

	// No vehicle means no charge
	price = computeTotalPrice(nil, day(2026, time.June, 10), day(2026, time.June, 13), 0)
	assert.Equal(t, 0.0, price)

	// Inverted range never goes negative
	price = computeTotalPrice(vehicle, day(2026, time.June, 13), day(2026, time.June, 10), 0)
	assert.Equal(t, 0.0, price)
}
