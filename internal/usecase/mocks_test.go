package usecase

import (
	"context"
	"time"

	"vehicle-rental/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn                    func(ctx context.Context, booking *entity.Booking) error
	createCheckedFn             func(ctx context.Context, booking *entity.Booking) error
	findByIDFn                  func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	findAllFn                   func(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error)
	countAllFn                  func(ctx context.Context, status *entity.BookingStatus) (int64, error)
	updateStatusFn              func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	deleteByIDsFn               func(ctx context.Context, ids []uuid.UUID) (int64, error)
	findOverlappingFn           func(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error)
	findVehicleIDsOverlappingFn func(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	if m.createCheckedFn == nil {
		return nil
	}
	return m.createCheckedFn(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, limit, offset, status)
}

func (m *mockBookingRepo) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	if m.countAllFn == nil {
		return 0, nil
	}
	return m.countAllFn(ctx, status)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	if m.updateStatusFn == nil {
		return nil
	}
	return m.updateStatusFn(ctx, bookingID, status)
}

func (m *mockBookingRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if m.deleteByIDsFn == nil {
		return 0, nil
	}
	return m.deleteByIDsFn(ctx, ids)
}

func (m *mockBookingRepo) FindOverlapping(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error) {
	if m.findOverlappingFn == nil {
		return nil, nil
	}
	return m.findOverlappingFn(ctx, vehicleID, start, end, statuses)
}

func (m *mockBookingRepo) FindVehicleIDsOverlapping(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error) {
	if m.findVehicleIDsOverlappingFn == nil {
		return nil, nil
	}
	return m.findVehicleIDsOverlappingFn(ctx, start, end, statuses)
}

// bookingStore mimics the conflict queries over an in-memory booking list,
// applying the same inclusive overlap and status rules as the SQL.
type bookingStore struct {
	bookings []*entity.Booking
}

func (s *bookingStore) repo() *mockBookingRepo {
	return &mockBookingRepo{
		findOverlappingFn: func(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error) {
			var out []*entity.Booking
			for _, b := range s.bookings {
				if b.VehicleID == nil || *b.VehicleID != vehicleID {
					continue
				}
				if !statusIn(b.Status, statuses) {
					continue
				}
				if b.OverlapsRange(start, end) {
					out = append(out, b)
				}
			}
			return out, nil
		},
		findVehicleIDsOverlappingFn: func(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error) {
			seen := map[uuid.UUID]struct{}{}
			var out []uuid.UUID
			for _, b := range s.bookings {
				if b.VehicleID == nil {
					continue
				}
				if !statusIn(b.Status, statuses) {
					continue
				}
				if !b.OverlapsRange(start, end) {
					continue
				}
				if _, ok := seen[*b.VehicleID]; ok {
					continue
				}
				seen[*b.VehicleID] = struct{}{}
				out = append(out, *b.VehicleID)
			}
			return out, nil
		},
	}
}

func statusIn(status entity.BookingStatus, statuses []entity.BookingStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// --- Mock VehicleRepository ---

type mockVehicleRepo struct {
	createFn        func(ctx context.Context, vehicle *entity.Vehicle) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	updateFn        func(ctx context.Context, vehicle *entity.Vehicle) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	findAvailableFn func(ctx context.Context) ([]*entity.Vehicle, error)
	findAllFn       func(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
	countAllFn      func(ctx context.Context) (int64, error)
}

func (m *mockVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, vehicle)
}

func (m *mockVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, vehicle)
}

func (m *mockVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

func (m *mockVehicleRepo) FindAvailable(ctx context.Context) ([]*entity.Vehicle, error) {
	if m.findAvailableFn == nil {
		return nil, nil
	}
	return m.findAvailableFn(ctx)
}

func (m *mockVehicleRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, limit, offset)
}

func (m *mockVehicleRepo) CountAll(ctx context.Context) (int64, error) {
	if m.countAllFn == nil {
		return 0, nil
	}
	return m.countAllFn(ctx)
}

// --- Mock ContactRepository ---

type mockContactRepo struct {
	createFn   func(ctx context.Context, message *entity.ContactMessage) error
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error)
	findAllFn  func(ctx context.Context, limit, offset int, unreadOnly bool) ([]*entity.ContactMessage, error)
	countAllFn func(ctx context.Context, unreadOnly bool) (int64, error)
	markReadFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockContactRepo) Create(ctx context.Context, message *entity.ContactMessage) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, message)
}

func (m *mockContactRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ContactMessage, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockContactRepo) FindAll(ctx context.Context, limit, offset int, unreadOnly bool) ([]*entity.ContactMessage, error) {
	if m.findAllFn == nil {
		return nil, nil
	}
	return m.findAllFn(ctx, limit, offset, unreadOnly)
}

func (m *mockContactRepo) CountAll(ctx context.Context, unreadOnly bool) (int64, error) {
	if m.countAllFn == nil {
		return 0, nil
	}
	return m.countAllFn(ctx, unreadOnly)
}

func (m *mockContactRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	if m.markReadFn == nil {
		return nil
	}
	return m.markReadFn(ctx, id)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn         func(ctx context.Context, user *entity.User) error
	findByIDFn       func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	findByEmailFn    func(ctx context.Context, email string) (*entity.User, error)
	findByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	updateFn         func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if m.findByIDFn == nil {
		return nil, nil
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.findByEmailFn == nil {
		return nil, nil
	}
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.findByUsernameFn == nil {
		return nil, nil
	}
	return m.findByUsernameFn(ctx, username)
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.updateFn == nil {
		return nil
	}
	return m.updateFn(ctx, user)
}

// --- Mock SessionRepository ---

type mockSessionRepo struct {
	createFn           func(ctx context.Context, session *entity.Session) error
	findValidSessionFn func(ctx context.Context, token string) (*entity.Session, error)
	revokeFn           func(ctx context.Context, token string) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, session)
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	if m.findValidSessionFn == nil {
		return nil, nil
	}
	return m.findValidSessionFn(ctx, token)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	if m.revokeFn == nil {
		return nil
	}
	return m.revokeFn(ctx, token)
}

// --- Shared helpers ---

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func vehicleWith(name string, vType entity.VehicleType, capacity int, pricePerDay float64) *entity.Vehicle {
	return &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        name,
		VehicleType: vType,
		PackageType: entity.PackageTypeCustom,
		PricePerDay: pricePerDay,
		Capacity:    capacity,
		IsAvailable: true,
	}
}

func bookingFor(vehicleID uuid.UUID, start, end time.Time, status entity.BookingStatus) *entity.Booking {
	return &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CustomerName:  "Test Customer",
		CustomerEmail: "customer@example.com",
		CustomerPhone: "0812345678",
		FromLocation:  "Jakarta",
		ToLocation:    "Bandung",
		StartDate:     start,
		EndDate:       end,
		VehicleID:     &vehicleID,
		Status:        status,
	}
}
