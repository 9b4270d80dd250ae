//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/testutil"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	Transactor    *GormTransactor
	ProfileRepo   profiles.ProfileRepository
	DocumentRepo  documents.DocumentRepository
	SignatureRepo documents.SignatureRepository
	BookingRepo   bookings.BookingRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}
	settings.AutoMigrate = true

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	logger := testutil.SetupTestLogger(t)

	profileRepo, err := NewGormProfileRepository(db, logger)
	require.NoError(t, err)
	documentRepo, err := NewGormDocumentRepository(db, logger)
	require.NoError(t, err)
	signatureRepo, err := NewGormSignatureRepository(db, logger)
	require.NoError(t, err)
	bookingRepo, err := NewGormBookingRepository(db, logger)
	require.NoError(t, err)

	return &TestContext{
		DB:            db,
		Transactor:    NewGormTransactor(db),
		ProfileRepo:   profileRepo,
		DocumentRepo:  documentRepo,
		SignatureRepo: signatureRepo,
		BookingRepo:   bookingRepo,
	}
}

// CreateTestProfile builds a member profile in the given status
func CreateTestProfile(t *testing.T, status profiles.Status) *profiles.Profile {
	t.Helper()

	id := "auth0|" + uuid.NewString()
	p := profiles.NewProfile(id, strings.ReplaceAll(uuid.NewString(), "-", "")[:10]+"@example.com", "Test Member", time.Now().UTC())
	p.Status = status
	return p
}

// CreateTestDocument builds an active document of kind
func CreateTestDocument(t *testing.T, kind documents.Kind, version int) *documents.Document {
	t.Helper()

	return &documents.Document{
		ID:              uuid.NewString(),
		Kind:            kind,
		Title:           "Test " + string(kind),
		Version:         version,
		Content:         "Terms and conditions",
		Active:          true,
		CreatedBy:       "auth0|admin",
		DateTimeCreated: time.Now().UTC(),
	}
}

// CreateTestBooking builds a scheduled 30 minute booking starting at start
func CreateTestBooking(t *testing.T, profileID string, start time.Time) *bookings.Booking {
	t.Helper()

	return &bookings.Booking{
		ID:              uuid.NewString(),
		ProfileID:       profileID,
		StartTime:       start.UTC(),
		EndTime:         start.UTC().Add(30 * time.Minute),
		Status:          bookings.StatusScheduled,
		CalendarEventID: "evt-" + uuid.NewString()[:8],
		DateTimeCreated: time.Now().UTC(),
	}
}
