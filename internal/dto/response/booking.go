package response

import (
	"time"

	"vehicle-rental/internal/data/entity"
)

type BookingResponse struct {
	ID             string               `json:"id"`
	CustomerName   string               `json:"customer_name"`
	CustomerEmail  string               `json:"customer_email"`
	CustomerPhone  string               `json:"customer_phone"`
	FromLocation   string               `json:"from_location"`
	ToLocation     string               `json:"to_location"`
	StartDate      string               `json:"start_date"`
	EndDate        string               `json:"end_date"`
	VehicleID      *string              `json:"vehicle_id,omitempty"`
	VehicleDetails *VehicleResponse     `json:"vehicle_details,omitempty"`
	TotalPrice     float64              `json:"total_price"`
	Status         entity.BookingStatus `json:"status"`
	StatusDisplay  string               `json:"status_display"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, vehicle *entity.Vehicle) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		CustomerPhone: booking.CustomerPhone,
		FromLocation:  booking.FromLocation,
		ToLocation:    booking.ToLocation,
		StartDate:     booking.StartDate.Format("2006-01-02"),
		EndDate:       booking.EndDate.Format("2006-01-02"),
		TotalPrice:    booking.TotalPrice,
		Status:        booking.Status,
		StatusDisplay: booking.Status.Display(),
		CreatedAt:     booking.CreatedAt,
	}

	if booking.VehicleID != nil {
		id := booking.VehicleID.String()
		resp.VehicleID = &id
	}

	if vehicle != nil {
		vehicleResp := VehicleToResponse(vehicle)
		resp.VehicleDetails = &vehicleResp
	}

	return resp
}
