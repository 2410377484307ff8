package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrBookingConflict is returned when the guarded insert finds an
// overlapping non-terminal booking for the same vehicle.
var ErrBookingConflict = errors.New("conflicting booking exists for vehicle")

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	// CreateChecked re-runs the overlap check and inserts inside one
	// transaction, serialized per vehicle. Returns ErrBookingConflict
	// when another booking won the slot.
	CreateChecked(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error)
	CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// Availability queries
	FindOverlapping(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error)
	FindVehicleIDsOverlapping(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, customer_name, customer_email, customer_phone,
	       from_location, to_location, start_date, end_date,
	       vehicle_id, total_price, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.FromLocation,
		&booking.ToLocation,
		&booking.StartDate,
		&booking.EndDate,
		&booking.VehicleID,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, customer_name, customer_email, customer_phone,
		                      from_location, to_location, start_date, end_date,
		                      vehicle_id, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.FromLocation,
		booking.ToLocation,
		booking.StartDate,
		booking.EndDate,
		booking.VehicleID,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("customer_email", booking.CustomerEmail),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) CreateChecked(ctx context.Context, booking *entity.Booking) error {
	if booking.VehicleID == nil {
		return r.Create(ctx, booking)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent submissions for the same vehicle so the
	// check below cannot race with another insert.
	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1::text))`
	if _, err := tx.Exec(ctx, lockQuery, booking.VehicleID); err != nil {
		return fmt.Errorf("acquire vehicle lock: %w", err)
	}

	conflictQuery := `
		SELECT COUNT(*)
		FROM bookings
		WHERE vehicle_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		  AND status = ANY($4)
	`

	var conflicts int64
	err = tx.QueryRow(ctx, conflictQuery,
		booking.VehicleID, booking.StartDate, booking.EndDate, statusStrings(entity.BlockingStatuses),
	).Scan(&conflicts)
	if err != nil {
		r.log.Error("Failed to check booking conflicts",
			zap.Error(err),
			zap.String("vehicle_id", booking.VehicleID.String()),
		)
		return fmt.Errorf("check booking conflicts: %w", err)
	}

	if conflicts > 0 {
		return ErrBookingConflict
	}

	insertQuery := `
		INSERT INTO bookings (id, user_id, customer_name, customer_email, customer_phone,
		                      from_location, to_location, start_date, end_date,
		                      vehicle_id, total_price, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = tx.Exec(ctx, insertQuery,
		booking.ID,
		booking.UserID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.FromLocation,
		booking.ToLocation,
		booking.StartDate,
		booking.EndDate,
		booking.VehicleID,
		booking.TotalPrice,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int, status *entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, statusArg(status))
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, statusArg(status)).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `DELETE FROM bookings WHERE id = ANY($1)`

	result, err := r.db.Exec(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to delete bookings",
			zap.Error(err),
			zap.Int("requested", len(ids)),
		)
		return 0, fmt.Errorf("delete %d bookings: %w", len(ids), err)
	}

	deleted := result.RowsAffected()
	r.log.Info("Bookings deleted",
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}

func (r *bookingRepository) FindOverlapping(ctx context.Context, vehicleID uuid.UUID, start, end time.Time, statuses []entity.BookingStatus) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE vehicle_id = $1
		  AND start_date <= $3
		  AND end_date >= $2
		  AND status = ANY($4)
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, vehicleID, start, end, statusStrings(statuses))
	if err != nil {
		r.log.Error("Failed to find overlapping bookings",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find overlapping bookings for vehicle %s: %w", vehicleID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindVehicleIDsOverlapping(ctx context.Context, start, end time.Time, statuses []entity.BookingStatus) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT vehicle_id
		FROM bookings
		WHERE vehicle_id IS NOT NULL
		  AND start_date <= $2
		  AND end_date >= $1
		  AND status = ANY($3)
	`

	rows, err := r.db.Query(ctx, query, start, end, statusStrings(statuses))
	if err != nil {
		r.log.Error("Failed to find booked vehicle IDs",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find booked vehicle IDs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			r.log.Error("Failed to scan vehicle ID", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle ID: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func statusStrings(statuses []entity.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func statusArg(status *entity.BookingStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}
