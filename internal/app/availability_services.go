package app

import (
	"context"
	"fmt"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// availabilityService implements the AvailabilityService interface
type availabilityService struct {
	calendar    scheduling.CalendarConnector
	bookingRepo bookings.BookingRepository
	rules       scheduling.Rules
	logger      logger.Logger
	now         func() time.Time
}

// NewAvailabilityService creates a new instance of AvailabilityService
func NewAvailabilityService(
	calendar scheduling.CalendarConnector,
	bookingRepo bookings.BookingRepository,
	rules scheduling.Rules,
	logger logger.Logger,
) (scheduling.AvailabilityService, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &availabilityService{
		calendar:    calendar,
		bookingRepo: bookingRepo,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
	}, nil
}

func (s *availabilityService) Slots(ctx context.Context, from, to time.Time) ([]scheduling.Interval, error) {
	if err := scheduling.CheckRange(from, to, s.rules); err != nil {
		return nil, err
	}

	window := scheduling.Window(from, to, s.rules)
	busy, err := busyTimes(ctx, s.calendar, s.bookingRepo, window)
	if err != nil {
		return nil, err
	}

	slots, err := scheduling.GenerateSlots(scheduling.SlotRequest{
		From: from,
		To:   to,
		Busy: busy,
		Now:  s.now(),
	}, s.rules)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Computed availability", "from", from.Format(time.DateOnly), "to", to.Format(time.DateOnly), "busy", len(busy), "slots", len(slots))
	return slots, nil
}

func (s *availabilityService) Rules() scheduling.Rules {
	return s.rules
}

// busyTimes merges the calendar's busy time with locally scheduled bookings.
// The local rows cover events created moments ago that freebusy may not
// report yet and events someone removed from the calendar by hand.
func busyTimes(ctx context.Context, calendar scheduling.CalendarConnector, bookingRepo bookings.BookingRepository, window scheduling.Interval) ([]scheduling.Interval, error) {
	busy, err := calendar.FreeBusy(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendar availability: %w", err)
	}

	scheduled, err := bookingRepo.ListScheduledBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	for _, b := range scheduled {
		busy = append(busy, scheduling.Interval{Start: b.StartTime, End: b.EndTime})
	}
	return scheduling.MergeIntervals(busy), nil
}
