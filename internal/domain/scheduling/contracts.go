package scheduling

import (
	"context"
	"errors"
	"time"
)

// ErrCalendarUnavailable indicates the external calendar cannot be queried
// right now, e.g. its quota is exhausted. Callers may retry later.
var ErrCalendarUnavailable = errors.New("calendar temporarily unavailable")

// Event is a consultation to be placed on the calendar.
type Event struct {
	Summary       string
	Description   string
	AttendeeEmail string
	Start         time.Time
	End           time.Time
}

// CalendarConnector talks to the external calendar holding consultations.
type CalendarConnector interface {
	// FreeBusy returns the merged busy intervals of the calendar within window.
	FreeBusy(ctx context.Context, window Interval) ([]Interval, error)

	// CreateEvent inserts an event and returns its calendar id.
	CreateEvent(ctx context.Context, event Event) (string, error)

	// DeleteEvent removes an event. Deleting an event that no longer exists is not an error.
	DeleteEvent(ctx context.Context, eventID string) error
}

// AvailabilityService answers "when can I book?".
type AvailabilityService interface {
	// Slots returns the free slots between the dates from and to, inclusive.
	Slots(ctx context.Context, from, to time.Time) ([]Interval, error)

	// Rules returns the business-hour rules in effect.
	Rules() Rules
}
