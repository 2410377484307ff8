package repository

import (
	"context"
	"fmt"

	"vehicle-rental/internal/data/entity"
	"vehicle-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindAvailable returns the owner-enabled inventory in name order.
	FindAvailable(ctx context.Context) ([]*entity.Vehicle, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error)
	CountAll(ctx context.Context) (int64, error)
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, name, vehicle_type, package_type, image_url, price_per_day,
	       description, capacity, is_available, package_details, created_at, updated_at, deleted_at`

func scanVehicle(row pgx.Row) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Name,
		&vehicle.VehicleType,
		&vehicle.PackageType,
		&vehicle.ImageURL,
		&vehicle.PricePerDay,
		&vehicle.Description,
		&vehicle.Capacity,
		&vehicle.IsAvailable,
		&vehicle.PackageDetails,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
		&vehicle.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, name, vehicle_type, package_type, image_url, price_per_day,
		                      description, capacity, is_available, package_details,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.VehicleType,
		vehicle.PackageType,
		vehicle.ImageURL,
		vehicle.PricePerDay,
		vehicle.Description,
		vehicle.Capacity,
		vehicle.IsAvailable,
		vehicle.PackageDetails,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("name", vehicle.Name),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.Name, err)
	}

	return nil
}

func (r *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1 AND deleted_at IS NULL`

	vehicle, err := scanVehicle(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (r *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET name = $2, vehicle_type = $3, package_type = $4, image_url = $5,
		    price_per_day = $6, description = $7, capacity = $8,
		    is_available = $9, package_details = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Name,
		vehicle.VehicleType,
		vehicle.PackageType,
		vehicle.ImageURL,
		vehicle.PricePerDay,
		vehicle.Description,
		vehicle.Capacity,
		vehicle.IsAvailable,
		vehicle.PackageDetails,
		vehicle.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (r *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE vehicles SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	r.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}

func (r *vehicleRepository) FindAvailable(ctx context.Context) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE is_available = TRUE AND deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find available vehicles", zap.Error(err))
		return nil, fmt.Errorf("find available vehicles: %w", err)
	}
	defer rows.Close()

	return collectVehicles(rows)
}

func (r *vehicleRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find vehicles",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find vehicles: %w", err)
	}
	defer rows.Close()

	return collectVehicles(rows)
}

func (r *vehicleRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM vehicles WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count vehicles", zap.Error(err))
		return 0, fmt.Errorf("count vehicles: %w", err)
	}

	return count, nil
}

func collectVehicles(rows pgx.Rows) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}
