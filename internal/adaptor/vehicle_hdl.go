package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"vehicle-rental/internal/dto/request"
	"vehicle-rental/internal/usecase"
	"vehicle-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VehicleHandler struct {
	service usecase.VehicleService
	log     *zap.Logger
}

func NewVehicleHandler(service usecase.VehicleService, log *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		service: service,
		log:     log.With(zap.String("handler", "vehicle")),
	}
}

// GetVehicles handles GET /api/vehicles (public)
func (h *VehicleHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.service.GetAvailableVehicles(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// Search handles POST /api/search (public)
func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.Search(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "search vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

// ==================== ADMIN METHODS ====================

// GetAllVehicles handles GET /api/admin/vehicles (admin only)
func (h *VehicleHandler) GetAllVehicles(w http.ResponseWriter, r *http.Request) {
	req := &request.PaginatedRequest{
		Page:    1,
		PerPage: 10,
	}

	query := r.URL.Query()
	req.Page = utils.ParseInt(query.Get("page"), 1)
	req.PerPage = utils.ParseInt(query.Get("per_page"), 10)

	vehicles, err := h.service.GetVehicles(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get all vehicles")
		return
	}

	utils.ResponseSuccess(w, "success", vehicles)
}

// GetVehicleByID handles GET /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) GetVehicleByID(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	vehicle, err := h.service.GetVehicleByID(r.Context(), vehicleID)
	if err != nil {
		h.handleServiceError(w, err, "get vehicle by ID")
		return
	}

	utils.ResponseSuccess(w, "success", vehicle)
}

// CreateVehicle handles POST /api/admin/vehicles (admin only)
func (h *VehicleHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req request.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vehicle, err := h.service.CreateVehicle(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create vehicle")
		return
	}

	utils.ResponseCreated(w, "Vehicle created", vehicle)
}

// UpdateVehicle handles PUT /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	var req request.VehicleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vehicle, err := h.service.UpdateVehicle(r.Context(), vehicleID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update vehicle")
		return
	}

	utils.ResponseSuccess(w, "Vehicle updated", vehicle)
}

// DeleteVehicle handles DELETE /api/admin/vehicles/{id} (admin only)
func (h *VehicleHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	vehicleID := chi.URLParam(r, "id")
	if vehicleID == "" {
		utils.ResponseBadRequest(w, "Vehicle ID is required", nil)
		return
	}

	if err := h.service.DeleteVehicle(r.Context(), vehicleID); err != nil {
		h.handleServiceError(w, err, "delete vehicle")
		return
	}

	utils.ResponseSuccess(w, "Vehicle deleted", nil)
}

func (h *VehicleHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		h.log.Warn(operation+" failed - invalid date range", zap.Error(err))
		utils.ResponseBadRequest(w, usecase.ErrInvalidDateRange.Error(), nil)

	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
