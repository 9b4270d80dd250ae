//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/testutil"
)

// TestNow is Monday 2026-10-19 08:00 in Los Angeles
var TestNow = time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

// MockCalendarConnector is a mock implementation of scheduling.CalendarConnector
type MockCalendarConnector struct {
	mock.Mock
}

// FreeBusy mocks the FreeBusy method
func (m *MockCalendarConnector) FreeBusy(ctx context.Context, window scheduling.Interval) ([]scheduling.Interval, error) {
	args := m.Called(ctx, window)
	busy, _ := args.Get(0).([]scheduling.Interval)
	return busy, args.Error(1)
}

// CreateEvent mocks the CreateEvent method
func (m *MockCalendarConnector) CreateEvent(ctx context.Context, event scheduling.Event) (string, error) {
	args := m.Called(ctx, event)
	return args.String(0), args.Error(1)
}

// DeleteEvent mocks the DeleteEvent method
func (m *MockCalendarConnector) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ProfileService      profiles.ProfileService
	DocumentService     documents.DocumentService
	AvailabilityService scheduling.AvailabilityService
	BookingService      bookings.BookingService

	Calendar  *MockCalendarConnector
	Clock     *testutil.FakeClock
	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	calendar := &MockCalendarConnector{}
	clock := testutil.NewFakeClock(TestNow)
	t.Cleanup(func() { calendar.AssertExpectations(t) })

	rules := scheduling.DefaultRules()

	profileSvc, err := NewProfileService(dbContext.ProfileRepo, dbContext.Transactor, logger)
	require.NoError(t, err)
	profileSvc.(*profileService).now = clock.Now

	documentSvc, err := NewDocumentService(dbContext.DocumentRepo, dbContext.SignatureRepo, dbContext.ProfileRepo, dbContext.Transactor, logger)
	require.NoError(t, err)
	documentSvc.(*documentService).now = clock.Now

	availabilitySvc, err := NewAvailabilityService(calendar, dbContext.BookingRepo, rules, logger)
	require.NoError(t, err)
	availabilitySvc.(*availabilityService).now = clock.Now

	bookingSvc, err := NewBookingService(dbContext.BookingRepo, dbContext.ProfileRepo, calendar, dbContext.Transactor, rules, "", logger)
	require.NoError(t, err)
	bookingSvc.(*bookingService).now = clock.Now

	return &TestServices{
		ProfileService:      profileSvc,
		DocumentService:     documentSvc,
		AvailabilityService: availabilitySvc,
		BookingService:      bookingSvc,
		Calendar:            calendar,
		Clock:               clock,
		DBContext:           dbContext,
	}
}

// CreateProfileInStatus registers a member and forces it into status
func CreateProfileInStatus(t *testing.T, services *TestServices, id string, status profiles.Status) *profiles.Profile {
	t.Helper()

	p := profiles.NewProfile(id, "member@example.com", "Jane Doe", TestNow)
	p.Status = status
	require.NoError(t, services.DBContext.ProfileRepo.Create(context.Background(), p))
	return p
}

// CreateAdmin registers an admin profile
func CreateAdmin(t *testing.T, services *TestServices, id string) *profiles.Profile {
	t.Helper()

	p := profiles.NewProfile(id, "staff@example.com", "Studio Staff", TestNow)
	p.Role = profiles.RoleAdmin
	p.Status = profiles.StatusActive
	require.NoError(t, services.DBContext.ProfileRepo.Create(context.Background(), p))
	return p
}

// LA returns a wall-clock time in Los Angeles
func LA(t *testing.T, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()

	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	return time.Date(y, m, d, hh, mm, 0, 0, loc)
}
