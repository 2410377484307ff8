package request

type VehicleRequest struct {
	Name           string  `json:"name" validate:"required,min=1,max=100"`
	VehicleType    string  `json:"vehicle_type" validate:"required,oneof=car suv van bus luxury"`
	PackageType    string  `json:"package_type" validate:"omitempty,oneof=1day 3days 5days custom"`
	ImageURL       *string `json:"image_url,omitempty" validate:"omitempty,url"`
	PricePerDay    float64 `json:"price_per_day" validate:"required,gt=0"`
	Description    string  `json:"description,omitempty"`
	Capacity       int     `json:"capacity" validate:"omitempty,min=1"`
	IsAvailable    *bool   `json:"is_available,omitempty"`
	PackageDetails string  `json:"package_details,omitempty"`
}

type VehicleUpdateRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	VehicleType    *string  `json:"vehicle_type,omitempty" validate:"omitempty,oneof=car suv van bus luxury"`
	PackageType    *string  `json:"package_type,omitempty" validate:"omitempty,oneof=1day 3days 5days custom"`
	ImageURL       *string  `json:"image_url,omitempty" validate:"omitempty,url"`
	PricePerDay    *float64 `json:"price_per_day,omitempty" validate:"omitempty,gt=0"`
	Description    *string  `json:"description,omitempty"`
	Capacity       *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	IsAvailable    *bool    `json:"is_available,omitempty"`
	PackageDetails *string  `json:"package_details,omitempty"`
}

// SearchRequest filters the available inventory by date range and optional
// type/capacity. Locations are recorded and echoed back, never filtered on.
type SearchRequest struct {
	FromLocation string  `json:"from_location" validate:"required,max=100"`
	ToLocation   string  `json:"to_location" validate:"required,max=100"`
	FromDate     string  `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate       string  `json:"to_date" validate:"required,datetime=2006-01-02"`
	VehicleType  *string `json:"vehicle_type,omitempty" validate:"omitempty,oneof=car suv van bus luxury"`
	Passengers   *int    `json:"passengers,omitempty" validate:"omitempty,min=1"`
}
