package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type VehicleResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	VehicleType        string    `json:"vehicle_type"`
	VehicleTypeDisplay string    `json:"vehicle_type_display"`
	PackageType        string    `json:"package_type"`
	PackageTypeDisplay string    `json:"package_type_display"`
	ImageURL           *string   `json:"image_url,omitempty"`
	PricePerDay        float64   `json:"price_per_day"`
	Description        string    `json:"description,omitempty"`
	Capacity           int       `json:"capacity"`
	CapacityDisplay    string    `json:"capacity_display"`
	PackageDetails     string    `json:"package_details,omitempty"`
	IsAvailable        bool      `json:"is_available"`
	CreatedAt          time.Time `json:"created_at"`
}

// SearchCriteria echoes the submitted search back to the caller.
// Locations are never used as filter predicates.
type SearchCriteria struct {
	FromLocation string  `json:"from_location"`
	ToLocation   string  `json:"to_location"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	VehicleType  *string `json:"vehicle_type,omitempty"`
	Passengers   *int    `json:"passengers,omitempty"`
}

type SearchResponse struct {
	Vehicles       []VehicleResponse `json:"vehicles"`
	SearchCriteria SearchCriteria    `json:"search_criteria"`
}

// Helper converters
func VehicleToResponse(vehicle *entity.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 vehicle.ID.String(),
		Name:               vehicle.Name,
		VehicleType:        string(vehicle.VehicleType),
		VehicleTypeDisplay: vehicle.VehicleType.Display(),
		PackageType:        string(vehicle.PackageType),
		PackageTypeDisplay: vehicle.PackageType.Display(),
		ImageURL:           vehicle.ImageURL,
		PricePerDay:        vehicle.PricePerDay,
		Description:        vehicle.Description,
		Capacity:           vehicle.Capacity,
		CapacityDisplay:    vehicle.CapacityDisplay(),
		PackageDetails:     vehicle.PackageDetails,
		IsAvailable:        vehicle.IsAvailable,
		CreatedAt:          vehicle.CreatedAt,
	}
}

func VehiclesToResponse(vehicles []*entity.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		out[i] = VehicleToResponse(vehicle)
	}
	return out
}
