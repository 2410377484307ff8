package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustDay(d int) time.Time {
	return time.Date(2026, time.June, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsRange_Inclusive(t *testing.T) {
	booking := &Booking{StartDate: mustDay(10), EndDate: mustDay(15)}

	// Ending the day another starts still conflicts
	assert.True(t, booking.OverlapsRange(mustDay(15), mustDay(20)))
	assert.True(t, booking.OverlapsRange(mustDay(5), mustDay(10)))

	// Fully contained and fully containing ranges conflict
	assert.True(t, booking.OverlapsRange(mustDay(11), mustDay(14)))
	assert.True(t, booking.OverlapsRange(mustDay(1), mustDay(30)))

	// Disjoint ranges do not
	assert.False(t, booking.OverlapsRange(mustDay(16), mustDay(20)))
	assert.False(t, booking.OverlapsRange(mustDay(1), mustDay(9)))
}

func TestRentalDays(t *testing.T) {
	assert.Equal(t, 3, RentalDays(mustDay(10), mustDay(13)))
	assert.Equal(t, 0, RentalDays(mustDay(10), mustDay(10)))
	assert.Equal(t, 0, RentalDays(mustDay(13), mustDay(10)))
}

func TestBookingStatus_Blocks(t *testing.T) {
	assert.True(t, BookingStatusPending.Blocks())
	assert.True(t, BookingStatusConfirmed.Blocks())
	assert.False(t, BookingStatusCancelled.Blocks())
	assert.False(t, BookingStatusCompleted.Blocks())
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	// pending can move anywhere forward
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusConfirmed))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCompleted))

	// confirmed cannot go back to pending
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusCompleted))
	assert.False(t, BookingStatusConfirmed.CanTransitionTo(BookingStatusPending))

	// terminal statuses are immutable
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusConfirmed))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCancelled))

	// no self transitions
	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusPending))
}

func TestBookingStatus_Valid(t *testing.T) {
	assert.True(t, BookingStatusPending.Valid())
	assert.True(t, BookingStatusCompleted.Valid())
	assert.False(t, BookingStatus("archived").Valid())
}
