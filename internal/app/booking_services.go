package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

const defaultEventSummary = "SmartFitter consultation"

// bookingService implements the BookingService interface
type bookingService struct {
	bookingRepo  bookings.BookingRepository
	profileRepo  profiles.ProfileRepository
	calendar     scheduling.CalendarConnector
	transactor   Transactor
	rules        scheduling.Rules
	eventSummary string
	logger       logger.Logger
	now          func() time.Time
}

// NewBookingService creates a new instance of BookingService. eventSummary
// prefixes the title of calendar events; empty means "SmartFitter consultation".
func NewBookingService(
	bookingRepo bookings.BookingRepository,
	profileRepo profiles.ProfileRepository,
	calendar scheduling.CalendarConnector,
	transactor Transactor,
	rules scheduling.Rules,
	eventSummary string,
	logger logger.Logger,
) (bookings.BookingService, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if eventSummary == "" {
		eventSummary = defaultEventSummary
	}
	return &bookingService{
		bookingRepo:  bookingRepo,
		profileRepo:  profileRepo,
		calendar:     calendar,
		transactor:   transactor,
		rules:        rules,
		eventSummary: eventSummary,
		logger:       logger,
		now:          time.Now,
	}, nil
}

// Book places the consultation on the calendar first and then records it.
// When recording fails the calendar event is removed again.
func (s *bookingService) Book(ctx context.Context, profileID string, start time.Time, notes string) (*bookings.Booking, error) {
	profile, err := s.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Status != profiles.StatusPendingBooking {
		return nil, fmt.Errorf("%w: booking requires status %s, profile is %s",
			apperrors.ErrInvalidTransition, profiles.StatusPendingBooking, profile.Status)
	}

	if err := s.rules.CheckAligned(start); err != nil {
		return nil, err
	}
	now := s.now()
	if start.Before(now.Add(s.rules.MinLeadTime)) {
		return nil, fmt.Errorf("%w: %s is too soon to book", scheduling.ErrInvalidSlot, start.UTC().Format(time.RFC3339))
	}

	slot := s.rules.SlotAt(start).UTC()
	busy, err := busyTimes(ctx, s.calendar, s.bookingRepo, slot)
	if err != nil {
		return nil, err
	}
	if !scheduling.IsSlotFree(slot, busy) {
		return nil, fmt.Errorf("%w: %s", bookings.ErrSlotUnavailable, slot.Start.Format(time.RFC3339))
	}

	eventID, err := s.calendar.CreateEvent(ctx, s.eventFor(profile, slot, notes))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	booking := &bookings.Booking{
		ID:              uuid.NewString(),
		ProfileID:       profile.ID,
		StartTime:       slot.Start,
		EndTime:         slot.End,
		Status:          bookings.StatusScheduled,
		CalendarEventID: eventID,
		Notes:           notes,
		DateTimeCreated: now.UTC(),
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		taken, err := s.bookingRepo.ListScheduledBetween(ctx, slot.Start, slot.End)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return fmt.Errorf("%w: %s", bookings.ErrSlotUnavailable, slot.Start.Format(time.RFC3339))
		}
		if err := s.bookingRepo.Create(ctx, booking); err != nil {
			// another member took the slot after the check above
			if errors.Is(err, apperrors.ErrConflict) {
				return fmt.Errorf("%w: %s", bookings.ErrSlotUnavailable, slot.Start.Format(time.RFC3339))
			}
			return err
		}
		_, err = s.profileRepo.TransitionStatus(ctx, profile.ID, profiles.StatusPendingBooking, profiles.StatusPendingApproval)
		return err
	})
	if err != nil {
		if delErr := s.calendar.DeleteEvent(context.WithoutCancel(ctx), eventID); delErr != nil {
			s.logger.Error("Failed to remove orphaned calendar event", "event_id", eventID, "error", delErr)
		}
		return nil, err
	}

	s.logger.Info("Booked consultation", "id", booking.ID, "profile_id", profile.ID, "start", booking.StartTime)
	return booking, nil
}

func (s *bookingService) eventFor(profile *profiles.Profile, slot scheduling.Interval, notes string) scheduling.Event {
	who := profile.FullName
	if who == "" {
		who = profile.Email
	}

	lines := []string{"Member: " + who, "Email: " + profile.Email}
	if profile.Phone != "" {
		lines = append(lines, "Phone: "+profile.Phone)
	}
	if notes != "" {
		lines = append(lines, "", notes)
	}

	return scheduling.Event{
		Summary:       fmt.Sprintf("%s: %s", s.eventSummary, who),
		Description:   strings.Join(lines, "\n"),
		AttendeeEmail: profile.Email,
		Start:         slot.Start,
		End:           slot.End,
	}
}

func (s *bookingService) ListByProfile(ctx context.Context, profileID string) ([]*bookings.Booking, error) {
	return s.bookingRepo.ListByProfile(ctx, profileID)
}

// Cancel frees the slot. A member still waiting for review goes back to
// pending_booking; after review the profile status is left alone.
func (s *bookingService) Cancel(ctx context.Context, profileID, bookingID string) (*bookings.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.ProfileID != profileID {
		return nil, fmt.Errorf("%w: booking with ID %s", apperrors.ErrNotFound, bookingID)
	}
	if booking.Status != bookings.StatusScheduled {
		return nil, fmt.Errorf("%w: booking is %s", apperrors.ErrConflict, booking.Status)
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, bookings.StatusCancelled); err != nil {
			return err
		}
		profile, err := s.profileRepo.GetByID(ctx, profileID)
		if err != nil {
			return err
		}
		if profile.Status == profiles.StatusPendingApproval {
			_, err = s.profileRepo.TransitionStatus(ctx, profileID, profiles.StatusPendingApproval, profiles.StatusPendingBooking)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	booking.Status = bookings.StatusCancelled
	s.logger.Info("Cancelled booking", "id", booking.ID, "profile_id", profileID)

	// best effort, the booking is already cancelled
	if booking.CalendarEventID != "" {
		if err := s.calendar.DeleteEvent(context.WithoutCancel(ctx), booking.CalendarEventID); err != nil {
			s.logger.Error("Failed to delete calendar event for cancelled booking", "id", booking.ID, "event_id", booking.CalendarEventID, "error", err)
		}
	}
	return booking, nil
}

func (s *bookingService) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	n, err := s.bookingRepo.CompleteEndedBefore(ctx, now)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Completed past bookings", "count", n)
	}
	return n, nil
}
