//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/testutil"
)

func sameInterval(want scheduling.Interval) func(scheduling.Interval) bool {
	return func(got scheduling.Interval) bool {
		return got.Start.Equal(want.Start) && got.End.Equal(want.End)
	}
}

func TestAvailabilityService_Slots(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	tuesday := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	window := scheduling.Interval{
		Start: LA(t, 2026, 10, 20, 9, 0),
		End:   LA(t, 2026, 10, 20, 17, 0),
	}
	services.Calendar.On("FreeBusy", mock.Anything, mock.MatchedBy(sameInterval(window))).Return([]scheduling.Interval{
		{Start: LA(t, 2026, 10, 20, 10, 0), End: LA(t, 2026, 10, 20, 11, 0)},
	}, nil).Once()

	// a booking the calendar does not report (yet)
	CreateProfileInStatus(t, services, "auth0|other", profiles.StatusPendingApproval)
	require.NoError(t, services.DBContext.BookingRepo.Create(ctx, &bookings.Booking{
		ID:              "5f0c2a4e-8d7b-4c1e-9a3f-2b6d8e1f0a7c",
		ProfileID:       "auth0|other",
		StartTime:       LA(t, 2026, 10, 20, 14, 0),
		EndTime:         LA(t, 2026, 10, 20, 14, 30),
		Status:          bookings.StatusScheduled,
		DateTimeCreated: TestNow,
	}))

	slots, err := services.AvailabilityService.Slots(ctx, tuesday, tuesday)
	require.NoError(t, err)
	assert.Len(t, slots, 16-2-1)
	for _, s := range slots {
		assert.Equal(t, time.UTC, s.Start.Location())
		assert.False(t, s.Start.Equal(LA(t, 2026, 10, 20, 10, 0)))
		assert.False(t, s.Start.Equal(LA(t, 2026, 10, 20, 14, 0)))
	}
	assert.Equal(t, 30*time.Minute, services.AvailabilityService.Rules().SlotLength)
}

func TestAvailabilityService_RangeErrorsSkipCalendar(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	from := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	_, err := services.AvailabilityService.Slots(ctx, from, from.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, scheduling.ErrInvalidRange)

	_, err = services.AvailabilityService.Slots(ctx, from, from.AddDate(0, 2, 0))
	assert.ErrorIs(t, err, scheduling.ErrRangeTooLarge)

	services.Calendar.AssertNotCalled(t, "FreeBusy", mock.Anything, mock.Anything)
}

func TestAvailabilityService_CalendarUnavailable(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).
		Return(nil, scheduling.ErrCalendarUnavailable).Once()

	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	_, err := services.AvailabilityService.Slots(context.Background(), day, day)
	assert.ErrorIs(t, err, scheduling.ErrCalendarUnavailable)
}

func TestBookingService_Book(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	start := LA(t, 2026, 10, 20, 10, 30)
	slot := scheduling.Interval{Start: start.UTC(), End: start.Add(30 * time.Minute).UTC()}

	services.Calendar.On("FreeBusy", mock.Anything, mock.MatchedBy(sameInterval(slot))).Return([]scheduling.Interval{}, nil).Once()
	services.Calendar.On("CreateEvent", mock.Anything, mock.MatchedBy(func(e scheduling.Event) bool {
		return e.Start.Equal(slot.Start) && e.End.Equal(slot.End) &&
			e.AttendeeEmail == "member@example.com" &&
			strings.Contains(e.Summary, "Jane Doe") &&
			strings.Contains(e.Description, "knee injury")
	})).Return("evt123", nil).Once()

	booking, err := services.BookingService.Book(ctx, "auth0|jane", start, "knee injury")
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusScheduled, booking.Status)
	assert.Equal(t, "evt123", booking.CalendarEventID)
	assert.True(t, booking.StartTime.Equal(start))

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingApproval, p.Status)

	list, err := services.BookingService.ListByProfile(ctx, "auth0|jane")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, booking.ID, list[0].ID)

	// booking twice is a pipeline error, not a calendar call
	_, err = services.BookingService.Book(ctx, "auth0|jane", start.Add(time.Hour), "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestBookingService_BookRejectsBadSlots(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	tests := map[string]struct {
		start time.Time
		want  error
	}{
		"off grid":    {LA(t, 2026, 10, 20, 10, 15), scheduling.ErrInvalidSlot},
		"after hours": {LA(t, 2026, 10, 20, 17, 0), scheduling.ErrInvalidSlot},
		"weekend":     {LA(t, 2026, 10, 24, 10, 0), scheduling.ErrInvalidSlot},
		"in the past": {LA(t, 2026, 10, 16, 10, 0), scheduling.ErrInvalidSlot},
		"before open": {LA(t, 2026, 10, 20, 8, 30), scheduling.ErrInvalidSlot},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := services.BookingService.Book(ctx, "auth0|jane", tt.start, "")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := services.BookingService.Book(ctx, "auth0|nobody", LA(t, 2026, 10, 20, 10, 0), "")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingService_BookBusySlot(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	start := LA(t, 2026, 10, 20, 10, 0)
	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).Return([]scheduling.Interval{
		{Start: start.Add(-15 * time.Minute), End: start.Add(15 * time.Minute)},
	}, nil).Once()

	_, err := services.BookingService.Book(ctx, "auth0|jane", start, "")
	assert.ErrorIs(t, err, bookings.ErrSlotUnavailable)
	services.Calendar.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingBooking, p.Status)
}

func TestBookingService_BookRemovesEventWhenSaveFails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).Return([]scheduling.Interval{}, nil).Once()
	services.Calendar.On("CreateEvent", mock.Anything, mock.Anything).Return("evt-orphan", nil).Once()
	services.Calendar.On("DeleteEvent", mock.Anything, "evt-orphan").Return(nil).Once()

	// notes longer than the column allows fail validation on save
	_, err := services.BookingService.Book(ctx, "auth0|jane", LA(t, 2026, 10, 20, 10, 0), strings.Repeat("x", 2001))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	list, err := services.BookingService.ListByProfile(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingService_BookCalendarFailure(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).Return([]scheduling.Interval{}, nil).Once()
	services.Calendar.On("CreateEvent", mock.Anything, mock.Anything).Return("", errors.New("boom")).Once()

	_, err := services.BookingService.Book(context.Background(), "auth0|jane", LA(t, 2026, 10, 20, 10, 0), "")
	assert.Error(t, err)

	p, err := services.ProfileService.GetByID(context.Background(), "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingBooking, p.Status)
}

func bookFor(t *testing.T, services *TestServices, profileID, eventID string, start time.Time) *bookings.Booking {
	t.Helper()

	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).Return([]scheduling.Interval{}, nil).Once()
	services.Calendar.On("CreateEvent", mock.Anything, mock.Anything).Return(eventID, nil).Once()

	booking, err := services.BookingService.Book(context.Background(), profileID, start, "")
	require.NoError(t, err)
	return booking
}

func TestBookingService_Cancel(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)
	booking := bookFor(t, services, "auth0|jane", "evt1", LA(t, 2026, 10, 20, 10, 0))

	_, err := services.BookingService.Cancel(ctx, "auth0|mallory", booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	services.Calendar.On("DeleteEvent", mock.Anything, "evt1").Return(nil).Once()
	cancelled, err := services.BookingService.Cancel(ctx, "auth0|jane", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, cancelled.Status)

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingBooking, p.Status)

	_, err = services.BookingService.Cancel(ctx, "auth0|jane", booking.ID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestBookingService_CancelAfterApprovalKeepsStatus(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateAdmin(t, services, "auth0|staff")
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)
	booking := bookFor(t, services, "auth0|jane", "evt1", LA(t, 2026, 10, 20, 10, 0))

	_, err := services.ProfileService.Approve(ctx, "auth0|staff", "auth0|jane")
	require.NoError(t, err)

	services.Calendar.On("DeleteEvent", mock.Anything, "evt1").Return(nil).Once()
	_, err = services.BookingService.Cancel(ctx, "auth0|jane", booking.ID)
	require.NoError(t, err)

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingContract, p.Status)
}

func TestBookingService_CancelCommitsBeforeCalendarCleanup(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)
	booking := bookFor(t, services, "auth0|jane", "evt1", LA(t, 2026, 10, 20, 10, 0))

	// by the time the calendar is called the cancellation is already stored
	services.Calendar.On("DeleteEvent", mock.Anything, "evt1").Run(func(args mock.Arguments) {
		stored, err := services.DBContext.BookingRepo.GetByID(ctx, booking.ID)
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusCancelled, stored.Status)
	}).Return(scheduling.ErrCalendarUnavailable).Once()

	cancelled, err := services.BookingService.Cancel(ctx, "auth0|jane", booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, cancelled.Status)

	stored, err := services.DBContext.BookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCancelled, stored.Status)

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingBooking, p.Status)
}

// staleSlotCheckRepository hides scheduled bookings from availability
// checks, as if another member booked the slot right after the check ran.
type staleSlotCheckRepository struct {
	bookings.BookingRepository
}

func (r *staleSlotCheckRepository) ListScheduledBetween(ctx context.Context, from, to time.Time) ([]*bookings.Booking, error) {
	return nil, nil
}

func TestBookingService_BookLosesSlotRace(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)

	start := LA(t, 2026, 10, 20, 10, 0)
	winner := &bookings.Booking{
		ID:              "00000000-0000-4000-8000-000000000001",
		ProfileID:       "auth0|other",
		StartTime:       start.UTC(),
		EndTime:         start.UTC().Add(30 * time.Minute),
		Status:          bookings.StatusScheduled,
		CalendarEventID: "evt-winner",
		DateTimeCreated: TestNow,
	}
	require.NoError(t, services.DBContext.BookingRepo.Create(ctx, winner))

	svc, err := NewBookingService(&staleSlotCheckRepository{services.DBContext.BookingRepo}, services.DBContext.ProfileRepo,
		services.Calendar, services.DBContext.Transactor, scheduling.DefaultRules(), "", testutil.SetupTestLogger(t))
	require.NoError(t, err)
	svc.(*bookingService).now = services.Clock.Now

	services.Calendar.On("FreeBusy", mock.Anything, mock.Anything).Return([]scheduling.Interval{}, nil).Once()
	services.Calendar.On("CreateEvent", mock.Anything, mock.Anything).Return("evt-loser", nil).Once()
	services.Calendar.On("DeleteEvent", mock.Anything, "evt-loser").Return(nil).Once()

	_, err = svc.Book(ctx, "auth0|jane", start, "")
	assert.ErrorIs(t, err, bookings.ErrSlotUnavailable)

	p, err := services.ProfileService.GetByID(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Equal(t, profiles.StatusPendingBooking, p.Status)

	list, err := services.BookingService.ListByProfile(ctx, "auth0|jane")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingService_CompletePast(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	CreateProfileInStatus(t, services, "auth0|jane", profiles.StatusPendingBooking)
	booking := bookFor(t, services, "auth0|jane", "evt1", LA(t, 2026, 10, 20, 10, 0))

	n, err := services.BookingService.CompletePast(ctx, booking.StartTime)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = services.BookingService.CompletePast(ctx, booking.EndTime)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stored, err := services.DBContext.BookingRepo.GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, bookings.StatusCompleted, stored.Status)
}
