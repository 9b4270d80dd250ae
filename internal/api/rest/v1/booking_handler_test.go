//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/testutil"
)

func testBooking(start time.Time, status bookings.Status) *bookings.Booking {
	return &bookings.Booking{
		ID:              "b9a7c3de-8f61-4a0e-9a55-0c8d8b5f1b11",
		ProfileID:       testPrincipal.Subject,
		StartTime:       start,
		EndTime:         start.Add(30 * time.Minute),
		Status:          status,
		CalendarEventID: "evt-1",
		DateTimeCreated: start.Add(-24 * time.Hour),
	}
}

func TestBookingHandler_Create(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))

	start := time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)
	mockBookingService.On("Book", mock.Anything, testPrincipal.Subject,
		mock.MatchedBy(func(t time.Time) bool { return t.Equal(start) }), "first visit").
		Return(testBooking(start, bookings.StatusScheduled), nil)

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/bookings", CreateBookingRequest{Start: start, Notes: "first visit"}, testPrincipal)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "scheduled", resp.Status)
	assert.True(t, resp.EndTime.Equal(start.Add(30*time.Minute)))
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_Create_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot taken", bookings.ErrSlotUnavailable, http.StatusConflict},
		{"wrong stage", apperrors.ErrInvalidTransition, http.StatusConflict},
		{"off grid", scheduling.ErrInvalidSlot, http.StatusBadRequest},
		{"calendar down", fmt.Errorf("freebusy: %w", scheduling.ErrCalendarUnavailable), http.StatusServiceUnavailable},
		{"unexpected", fmt.Errorf("insert booking: connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockBookingService := new(MockBookingService)
			handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))
			mockBookingService.On("Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)

			start := time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)
			c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/bookings", CreateBookingRequest{Start: start}, testPrincipal)
			handler.Create(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestBookingHandler_Create_InternalErrorHidesDetails(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))
	mockBookingService.On("Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/bookings", CreateBookingRequest{Start: time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)}, testPrincipal)
	handler.Create(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, decodeError(t, w).Message, "10.0.0.5")
}

func TestBookingHandler_Create_MissingStart(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodPost, "/api/v1/sf/bookings", map[string]string{"notes": "hi"}, testPrincipal)
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockBookingService.AssertNotCalled(t, "Book", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingHandler_List(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))

	start := time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)
	mockBookingService.On("ListByProfile", mock.Anything, testPrincipal.Subject).
		Return([]*bookings.Booking{testBooking(start, bookings.StatusCancelled)}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/v1/sf/bookings", nil, testPrincipal)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "cancelled", resp[0].Status)
}

func TestBookingHandler_Cancel(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))

	start := time.Date(2026, 10, 20, 16, 0, 0, 0, time.UTC)
	cancelled := testBooking(start, bookings.StatusCancelled)
	mockBookingService.On("Cancel", mock.Anything, testPrincipal.Subject, cancelled.ID).Return(cancelled, nil)

	c, w := newTestContext(t, http.MethodDelete, "/api/v1/sf/bookings/"+cancelled.ID, nil, testPrincipal)
	c.Params = gin.Params{{Key: "id", Value: cancelled.ID}}
	handler.Cancel(c)

	require.Equal(t, http.StatusOK, w.Code)
	mockBookingService.AssertExpectations(t)
}

func TestBookingHandler_Cancel_NotOwned(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))
	otherID := "0d3c2b1a-9f8e-4d7c-8b6a-5f4e3d2c1b0a"
	mockBookingService.On("Cancel", mock.Anything, testPrincipal.Subject, otherID).Return(nil, apperrors.ErrNotFound)

	c, w := newTestContext(t, http.MethodDelete, "/api/v1/sf/bookings/"+otherID, nil, testPrincipal)
	c.Params = gin.Params{{Key: "id", Value: otherID}}
	handler.Cancel(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Cancel_MalformedID(t *testing.T) {
	mockBookingService := new(MockBookingService)
	handler := NewBookingHandler(mockBookingService, testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodDelete, "/api/v1/sf/bookings/not-a-uuid", nil, testPrincipal)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
	handler.Cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "must be a UUID")
	mockBookingService.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}
