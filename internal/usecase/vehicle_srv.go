package usecase

import (
	"context"
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

type VehicleService interface {
	// Public endpoints
	GetAvailableVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	Search(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse, error)

	// Admin endpoints
	GetVehicles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VehicleResponse], error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

type vehicleService struct {
	repo         *repository.Repository
	availability AvailabilityService
	log          *zap.Logger
}

func NewVehicleService(repo *repository.Repository, availability AvailabilityService, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo:         repo,
		availability: availability,
		log:          log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) GetAvailableVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to get available vehicles", zap.Error(err))
		return nil, fmt.Errorf("get available vehicles: %w", err)
	}

	return response.VehiclesToResponse(vehicles), nil
}

func (s *vehicleService) Search(ctx context.Context, req *request.SearchRequest) (*response.SearchResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Search validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	fromDate, toDate, err := parseDateRange(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}

	var vehicleType *entity.VehicleType
	if req.VehicleType != nil {
		parsed := entity.VehicleType(*req.VehicleType)
		vehicleType = &parsed
	}

	// Inventory restricted to owner-enabled vehicles, name order.
	inventory, err := s.repo.Vehicle.FindAvailable(ctx)
	if err != nil {
		s.log.Error("Failed to load inventory for search", zap.Error(err))
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	available, err := s.availability.FilterAvailable(ctx, inventory, fromDate, toDate, vehicleType, req.Passengers)
	if err != nil {
		return nil, fmt.Errorf("filter available vehicles: %w", err)
	}

	s.log.Info("Search executed",
		zap.String("from_date", req.FromDate),
		zap.String("to_date", req.ToDate),
		zap.Stringp("vehicle_type", req.VehicleType),
		zap.Int("inventory", len(inventory)),
		zap.Int("available", len(available)),
	)

	return &response.SearchResponse{
		Vehicles: response.VehiclesToResponse(available),
		SearchCriteria: response.SearchCriteria{
			FromLocation: req.FromLocation,
			ToLocation:   req.ToLocation,
			FromDate:     req.FromDate,
			ToDate:       req.ToDate,
			VehicleType:  req.VehicleType,
			Passengers:   req.Passengers,
		},
	}, nil
}

// ==================== ADMIN METHODS ====================

func (s *vehicleService) GetVehicles(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.VehicleResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	vehicles, err := s.repo.Vehicle.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get vehicles",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	total, err := s.repo.Vehicle.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count vehicles", zap.Error(err))
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	return response.NewPaginatedResponse(response.VehiclesToResponse(vehicles), req.Page, req.PerPage, total), nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle %s: %w", vehicleID, err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	packageType := entity.PackageTypeCustom
	if req.PackageType != "" {
		packageType = entity.PackageType(req.PackageType)
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 4
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		VehicleType:    entity.VehicleType(req.VehicleType),
		PackageType:    packageType,
		ImageURL:       req.ImageURL,
		PricePerDay:    req.PricePerDay,
		Description:    req.Description,
		Capacity:       capacity,
		IsAvailable:    isAvailable,
		PackageDetails: req.PackageDetails,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("name", vehicle.Name),
		zap.String("vehicle_type", string(vehicle.VehicleType)),
	)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle %s: %w", vehicleID, err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.VehicleType != nil {
		vehicle.VehicleType = entity.VehicleType(*req.VehicleType)
	}
	if req.PackageType != nil {
		vehicle.PackageType = entity.PackageType(*req.PackageType)
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = req.ImageURL
	}
	if req.PricePerDay != nil {
		vehicle.PricePerDay = *req.PricePerDay
	}
	if req.Description != nil {
		vehicle.Description = *req.Description
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.IsAvailable != nil {
		vehicle.IsAvailable = *req.IsAvailable
	}
	if req.PackageDetails != nil {
		vehicle.PackageDetails = *req.PackageDetails
	}
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("update vehicle %s: %w", vehicleID, err)
	}

	s.log.Info("Vehicle updated", zap.String("vehicle_id", vehicleID))

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete vehicle %s: %w", vehicleID, err)
	}

	return nil
}
