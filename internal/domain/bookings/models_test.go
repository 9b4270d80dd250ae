//go:build unit
// +build unit

package bookings

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBooking_Validate(t *testing.T) {
	start := time.Date(2026, time.October, 20, 16, 0, 0, 0, time.UTC)
	b := &Booking{
		ID:              uuid.NewString(),
		ProfileID:       "auth0|abc",
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		Status:          StatusScheduled,
		DateTimeCreated: time.Now(),
	}
	assert.NoError(t, b.Validate())

	b.EndTime = start
	assert.Error(t, b.Validate(), "end must be after start")

	b.EndTime = start.Add(30 * time.Minute)
	b.Status = "pending"
	assert.Error(t, b.Validate())

	b.Status = StatusScheduled
	b.ID = "not-a-uuid"
	assert.Error(t, b.Validate())
}
