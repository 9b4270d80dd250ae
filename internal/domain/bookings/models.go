// Package bookings models consultation appointments.
package bookings

import (
	"errors"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
)

// ErrSlotUnavailable indicates the requested slot is already taken.
var ErrSlotUnavailable = errors.New("slot is no longer available")

// Status is the lifecycle state of a booking.
type Status string

// Booking statuses
const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Booking is a consultation reserved by a profile.
type Booking struct {
	ID              string    `validate:"required,uuid4"`
	ProfileID       string    `validate:"required,max=255"`
	StartTime       time.Time `validate:"required"`
	EndTime         time.Time `validate:"required,gtfield=StartTime"`
	Status          Status    `validate:"required,oneof=scheduled cancelled completed"`
	CalendarEventID string    `validate:"max=1024"`
	Notes           string    `validate:"max=2000"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Booking struct
func (b *Booking) Validate() error {
	return apperrors.ValidateStruct(b)
}
