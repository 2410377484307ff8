package usecase

import (
	"context"
	"testing"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/internal/data/repository"
	"vehicle-rental/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newVehicleService(vehicleRepo *mockVehicleRepo, bookingRepo *mockBookingRepo) VehicleService {
	repo := &repository.Repository{
		Vehicle: vehicleRepo,
		Booking: bookingRepo,
	}
	availability := NewAvailabilityService(bookingRepo, testLogger())
	return NewVehicleService(repo, availability, testLogger())
}

func searchRequest() *request.SearchRequest {
	return &request.SearchRequest{
		FromLocation: "Jakarta",
		ToLocation:   "Bandung",
		FromDate:     "2026-06-12",
		ToDate:       "2026-06-14",
	}
}

func TestGetAvailableVehicles(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	van := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)

	vehicleRepo := &mockVehicleRepo{
		findAvailableFn: func(ctx context.Context) ([]*entity.Vehicle, error) {
			return []*entity.Vehicle{car, van}, nil
		},
	}

	svc := newVehicleService(vehicleRepo, &mockBookingRepo{})

	vehicles, err := svc.GetAvailableVehicles(context.Background())

	assert.NoError(t, err)
	assert.Len(t, vehicles, 2)
	assert.Equal(t, "Avanza", vehicles[0].Name)
	assert.Equal(t, "Car", vehicles[0].VehicleTypeDisplay)
	assert.Equal(t, "4p", vehicles[0].CapacityDisplay)
}

func TestSearch_ExcludesBookedVehicles(t *testing.T) {
	car := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)
	van := vehicleWith("Hiace", entity.VehicleTypeVan, 12, 1200)

	store := &bookingStore{bookings: []*entity.Booking{
		bookingFor(van.ID, day(2026, time.June, 10), day(2026, time.June, 15), entity.BookingStatusPending),
	}}

	vehicleRepo := &mockVehicleRepo{
		findAvailableFn: func(ctx context.Context) ([]*entity.Vehicle, error) {
			return []*entity.Vehicle{car, van}, nil
		},
	}

	repo := &repository.Repository{Vehicle: vehicleRepo, Booking: store.repo()}
	availability := NewAvailabilityService(store.repo(), testLogger())
	svc := NewVehicleService(repo, availability, testLogger())

	result, err := svc.Search(context.Background(), searchRequest())

	assert.NoError(t, err)
	assert.Len(t, result.Vehicles, 1)
	assert.Equal(t, "Avanza", result.Vehicles[0].Name)
}

func TestSearch_EchoesCriteria(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		findAvailableFn: func(ctx context.Context) ([]*entity.Vehicle, error) {
			return nil, nil
		},
	}

	svc := newVehicleService(vehicleRepo, &mockBookingRepo{})

	req := searchRequest()
	vanType := "van"
	passengers := 8
	req.VehicleType = &vanType
	req.Passengers = &passengers

	result, err := svc.Search(context.Background(), req)

	assert.NoError(t, err)
	assert.Empty(t, result.Vehicles)
	assert.Equal(t, "Jakarta", result.SearchCriteria.FromLocation)
	assert.Equal(t, "Bandung", result.SearchCriteria.ToLocation)
	assert.Equal(t, "2026-06-12", result.SearchCriteria.FromDate)
	assert.Equal(t, "2026-06-14", result.SearchCriteria.ToDate)
	assert.Equal(t, &vanType, result.SearchCriteria.VehicleType)
	assert.Equal(t, &passengers, result.SearchCriteria.Passengers)
}

func TestSearch_SingleDayRangeAllowed(t *testing.T) {
	vehicleRepo := &mockVehicleRepo{
		findAvailableFn: func(ctx context.Context) ([]*entity.Vehicle, error) {
			return []*entity.Vehicle{vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)}, nil
		},
	}

	svc := newVehicleService(vehicleRepo, &mockBookingRepo{})

	req := searchRequest()
	req.FromDate = "2026-06-12"
	req.ToDate = "2026-06-12"

	result, err := svc.Search(context.Background(), req)

	assert.NoError(t, err)
	assert.Len(t, result.Vehicles, 1)
}

func TestSearch_InvertedRangeRejected(t *testing.T) {
	svc := newVehicleService(&mockVehicleRepo{}, &mockBookingRepo{})

	req := searchRequest()
	req.FromDate = "2026-06-14"
	req.ToDate = "2026-06-12"

	_, err := svc.Search(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestSearch_ValidationFailure(t *testing.T) {
	svc := newVehicleService(&mockVehicleRepo{}, &mockBookingRepo{})

	req := searchRequest()
	req.FromDate = "12/06/2026"

	_, err := svc.Search(context.Background(), req)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateVehicle_AppliesDefaults(t *testing.T) {
	var created *entity.Vehicle
	vehicleRepo := &mockVehicleRepo{
		createFn: func(ctx context.Context, vehicle *entity.Vehicle) error {
			created = vehicle
			return nil
		},
	}

	svc := newVehicleService(vehicleRepo, &mockBookingRepo{})

	resp, err := svc.CreateVehicle(context.Background(), &request.VehicleRequest{
		Name:        "Avanza",
		VehicleType: "car",
		PricePerDay: 500,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.PackageTypeCustom, created.PackageType)
	assert.Equal(t, 4, created.Capacity)
	assert.True(t, created.IsAvailable)
	assert.Equal(t, "Custom Trip", resp.PackageTypeDisplay)
}

func TestUpdateVehicle_PartialUpdate(t *testing.T) {
	vehicle := vehicleWith("Avanza", entity.VehicleTypeCar, 4, 500)

	var updated *entity.Vehicle
	vehicleRepo := &mockVehicleRepo{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
			return vehicle, nil
		},
		updateFn: func(ctx context.Context, v *entity.Vehicle) error {
			updated = v
			return nil
		},
	}

	svc := newVehicleService(vehicleRepo, &mockBookingRepo{})

	newPrice := 750.0
	disabled := false
	resp, err := svc.UpdateVehicle(context.Background(), vehicle.ID.String(), &request.VehicleUpdateRequest{
		PricePerDay: &newPrice,
		IsAvailable: &disabled,
	})

	assert.NoError(t, err)
	assert.Equal(t, 750.0, updated.PricePerDay)
	assert.False(t, updated.IsAvailable)
	// Untouched fields keep their values
	assert.Equal(t, "Avanza", updated.Name)
	assert.Equal(t, 4, resp.Capacity)
}

func TestGetVehicleByID_NotFound(t *testing.T) {
	svc := newVehicleService(&mockVehicleRepo{}, &mockBookingRepo{})

	_, err := svc.GetVehicleByID(context.Background(), uuid.New().String())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteVehicle_InvalidID(t *testing.T) {
	svc := newVehicleService(&mockVehicleRepo{}, &mockBookingRepo{})

	err := svc.DeleteVehicle(context.Background(), "not-a-uuid")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid vehicle ID")
}
