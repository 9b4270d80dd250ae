package bookings

import (
	"context"
	"time"
)

// BookingService books and cancels consultations.
type BookingService interface {
	// Book reserves the slot starting at start for profileID and advances the
	// profile from pending_booking to pending_approval.
	Book(ctx context.Context, profileID string, start time.Time, notes string) (*Booking, error)

	// ListByProfile returns the profile's bookings, most recent first.
	ListByProfile(ctx context.Context, profileID string) ([]*Booking, error)

	// Cancel cancels a scheduled booking owned by profileID.
	Cancel(ctx context.Context, profileID, bookingID string) (*Booking, error)

	// CompletePast marks scheduled bookings that ended before now as completed.
	CompletePast(ctx context.Context, now time.Time) (int64, error)
}

// BookingRepository persists bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	ListByProfile(ctx context.Context, profileID string) ([]*Booking, error)
	// ListScheduledBetween returns scheduled bookings overlapping [from, to).
	ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*Booking, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	// CompleteEndedBefore marks scheduled bookings ending at or before t as completed.
	CompleteEndedBefore(ctx context.Context, t time.Time) (int64, error)
}
