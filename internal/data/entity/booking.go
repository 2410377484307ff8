package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// Terminal statuses never change again and never block new bookings.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// Blocks reports whether a booking in this status occupies its vehicle
// for the booked date range.
func (s BookingStatus) Blocks() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// CanTransitionTo enforces the admin status flow:
// pending -> confirmed|cancelled|completed, confirmed -> cancelled|completed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.Terminal() || s == next {
		return false
	}
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled || next == BookingStatusCompleted
	case BookingStatusConfirmed:
		return next == BookingStatusCancelled || next == BookingStatusCompleted
	}
	return false
}

func (s BookingStatus) Display() string {
	switch s {
	case BookingStatusPending:
		return "Pending"
	case BookingStatusConfirmed:
		return "Confirmed"
	case BookingStatusCancelled:
		return "Cancelled"
	case BookingStatusCompleted:
		return "Completed"
	}
	return string(s)
}

// BlockingStatuses is the canonical status filter for conflict queries.
var BlockingStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

// Booking is a rental reservation. VehicleID is nil only for direct
// bookings awaiting manual vehicle assignment; UserID is nil when the
// booking was submitted without a registered account.
type Booking struct {
	BaseNoDelete
	UserID        *uuid.UUID    `db:"user_id"`
	CustomerName  string        `db:"customer_name"`
	CustomerEmail string        `db:"customer_email"`
	CustomerPhone string        `db:"customer_phone"`
	FromLocation  string        `db:"from_location"`
	ToLocation    string        `db:"to_location"`
	StartDate     time.Time     `db:"start_date"`
	EndDate       time.Time     `db:"end_date"`
	VehicleID     *uuid.UUID    `db:"vehicle_id"`
	TotalPrice    float64       `db:"total_price"`
	Status        BookingStatus `db:"status"`
}

// OverlapsRange applies the inclusive interval test: a booking ending the
// day another starts is a conflict, not a back-to-back handoff.
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// RentalDays is the day span between start and end, never negative.
func RentalDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
