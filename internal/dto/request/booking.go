package request

type CreateBookingRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=20"`
	FromLocation  string `json:"from_location" validate:"required,max=100"`
	ToLocation    string `json:"to_location" validate:"required,max=100"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
	VehicleID     string `json:"vehicle_id" validate:"required,uuid4"`
}

// DirectBookingRequest is a booking submitted without a vehicle; an
// operator assigns one later. Persisted with zero price, status pending.
type DirectBookingRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required,min=7,max=20"`
	FromLocation  string `json:"from_location" validate:"required,max=100"`
	ToLocation    string `json:"to_location" validate:"required,max=100"`
	StartDate     string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

type DeleteBookingsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid4"`
}
