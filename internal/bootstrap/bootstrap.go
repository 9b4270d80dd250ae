// Package bootstrap assembles repositories and services from configuration
// for the API and CLI binaries.
package bootstrap

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/app"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/connector"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/persistence"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// Store holds the database handle and its repositories.
type Store struct {
	DB            *gorm.DB
	Transactor    *persistence.GormTransactor
	ProfileRepo   profiles.ProfileRepository
	DocumentRepo  documents.DocumentRepository
	SignatureRepo documents.SignatureRepository
	BookingRepo   bookings.BookingRepository
}

// Close releases the database connection.
func (s *Store) Close() error {
	return persistence.CloseDB(s.DB)
}

// Services holds the application services.
type Services struct {
	Profiles     profiles.ProfileService
	Documents    documents.DocumentService
	Availability scheduling.AvailabilityService
	Bookings     bookings.BookingService
	Rules        scheduling.Rules
}

// NewStore opens the database and builds the repositories.
func NewStore(settings config.DatabaseSettings, log logger.Logger) (*Store, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	log.Info("Database connection established", "type", settings.Type)

	profileRepo, err := persistence.NewGormProfileRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}
	documentRepo, err := persistence.NewGormDocumentRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document repository: %w", err)
	}
	signatureRepo, err := persistence.NewGormSignatureRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature repository: %w", err)
	}
	bookingRepo, err := persistence.NewGormBookingRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking repository: %w", err)
	}

	return &Store{
		DB:            db,
		Transactor:    persistence.NewGormTransactor(db),
		ProfileRepo:   profileRepo,
		DocumentRepo:  documentRepo,
		SignatureRepo: signatureRepo,
		BookingRepo:   bookingRepo,
	}, nil
}

// NewServices builds the application services on top of store, talking to
// the configured Google calendar.
func NewServices(ctx context.Context, cfg *config.RestConfig, store *Store, log logger.Logger) (*Services, error) {
	calendar, err := connector.NewGoogleCalendarConnector(ctx, &cfg.Calendar, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar connector: %w", err)
	}
	return NewServicesWithCalendar(cfg, store, calendar, log)
}

// NewServicesWithCalendar builds the application services with the given
// calendar connector.
func NewServicesWithCalendar(cfg *config.RestConfig, store *Store, calendar scheduling.CalendarConnector, log logger.Logger) (*Services, error) {
	rules, err := app.RulesFromSettings(&cfg.Scheduling)
	if err != nil {
		return nil, fmt.Errorf("invalid scheduling settings: %w", err)
	}

	profileService, err := app.NewProfileService(store.ProfileRepo, store.Transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile service: %w", err)
	}

	documentService, err := app.NewDocumentService(store.DocumentRepo, store.SignatureRepo, store.ProfileRepo, store.Transactor, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create document service: %w", err)
	}

	availabilityService, err := app.NewAvailabilityService(calendar, store.BookingRepo, rules, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create availability service: %w", err)
	}

	bookingService, err := app.NewBookingService(store.BookingRepo, store.ProfileRepo, calendar, store.Transactor,
		rules, cfg.Calendar.EventSummary, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &Services{
		Profiles:     profileService,
		Documents:    documentService,
		Availability: availabilityService,
		Bookings:     bookingService,
		Rules:        rules,
	}, nil
}
