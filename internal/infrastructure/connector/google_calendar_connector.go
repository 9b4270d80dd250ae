package connector

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/config"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

type googleCalendarConnector struct {
	service    *calendar.Service
	calendarID string
	// service accounts may only invite attendees when impersonating a user
	inviteAttendees bool
	limiter         *RateLimiter
	logger          logger.Logger
}

// NewGoogleCalendarConnector authenticates as the configured service account
// and returns a CalendarConnector for settings.CalendarID.
func NewGoogleCalendarConnector(ctx context.Context, settings *config.CalendarSettings, logger logger.Logger) (scheduling.CalendarConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	credentials, err := loadCredentials(settings)
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentials, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}
	jwtConfig.Subject = settings.Subject

	service, err := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	return NewGoogleCalendarConnectorWithService(service, settings, logger), nil
}

// NewGoogleCalendarConnectorWithService wraps an already configured calendar
// service, e.g. one pointed at a test server with option.WithEndpoint.
func NewGoogleCalendarConnectorWithService(service *calendar.Service, settings *config.CalendarSettings, logger logger.Logger) scheduling.CalendarConnector {
	return &googleCalendarConnector{
		service:         service,
		calendarID:      settings.CalendarID,
		inviteAttendees: settings.Subject != "",
		limiter:         NewRateLimiter(settings.RequestsPerSecond, settings.BurstSize),
		logger:          logger,
	}
}

func loadCredentials(settings *config.CalendarSettings) ([]byte, error) {
	if settings.CredentialsJSON != "" {
		return []byte(settings.CredentialsJSON), nil
	}
	data, err := os.ReadFile(settings.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return data, nil
}

func (c *googleCalendarConnector) FreeBusy(ctx context.Context, window scheduling.Interval) ([]scheduling.Interval, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin: window.Start.UTC().Format(time.RFC3339),
		TimeMax: window.End.UTC().Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: c.calendarID}},
	}

	var resp *calendar.FreeBusyResponse
	err := c.call(ctx, "freebusy query", func() error {
		var err error
		resp, err = c.service.Freebusy.Query(req).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, err
	}

	cal, ok := resp.Calendars[c.calendarID]
	if !ok {
		return nil, fmt.Errorf("freebusy query: calendar %s missing from response: %w", c.calendarID, ErrNotFound)
	}
	if len(cal.Errors) > 0 {
		reasons := make([]string, 0, len(cal.Errors))
		for _, e := range cal.Errors {
			reasons = append(reasons, e.Reason)
		}
		if slices.Contains(reasons, "notFound") {
			return nil, fmt.Errorf("freebusy query: calendar %s: %w", c.calendarID, ErrNotFound)
		}
		return nil, fmt.Errorf("freebusy query: calendar %s: %s", c.calendarID, strings.Join(reasons, ", "))
	}

	busy := make([]scheduling.Interval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("freebusy query: invalid busy start %q: %w", period.Start, err)
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("freebusy query: invalid busy end %q: %w", period.End, err)
		}
		busy = append(busy, scheduling.Interval{Start: start, End: end})
	}

	return scheduling.MergeIntervals(busy), nil
}

func (c *googleCalendarConnector) CreateEvent(ctx context.Context, event scheduling.Event) (string, error) {
	description := event.Description
	ev := &calendar.Event{
		Summary: event.Summary,
		Start:   &calendar.EventDateTime{DateTime: event.Start.UTC().Format(time.RFC3339)},
		End:     &calendar.EventDateTime{DateTime: event.End.UTC().Format(time.RFC3339)},
	}

	sendUpdates := "none"
	if event.AttendeeEmail != "" {
		if c.inviteAttendees {
			ev.Attendees = []*calendar.EventAttendee{{Email: event.AttendeeEmail}}
			sendUpdates = "all"
		} else {
			description = strings.TrimSpace(description + "\n\nMember: " + event.AttendeeEmail)
		}
	}
	ev.Description = description

	var created *calendar.Event
	err := c.call(ctx, "insert event", func() error {
		var err error
		created, err = c.service.Events.Insert(c.calendarID, ev).SendUpdates(sendUpdates).Context(ctx).Do()
		return err
	})
	if err != nil {
		return "", err
	}

	c.logger.Info("Created calendar event", "event_id", created.Id, "start", ev.Start.DateTime)
	return created.Id, nil
}

func (c *googleCalendarConnector) DeleteEvent(ctx context.Context, eventID string) error {
	err := c.call(ctx, "delete event", func() error {
		return c.service.Events.Delete(c.calendarID, eventID).SendUpdates("all").Context(ctx).Do()
	})
	if IsNotFound(err) {
		c.logger.Warn("Calendar event already gone", "event_id", eventID)
		return nil
	}
	if err != nil {
		return err
	}

	c.logger.Info("Deleted calendar event", "event_id", eventID)
	return nil
}

// call waits for the rate limiter, runs fn and translates its error.
func (c *googleCalendarConnector) call(ctx context.Context, op string, fn func() error) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := fn()
	if err == nil {
		return nil
	}

	if IsRateLimited(err) {
		seconds := retryAfter(err)
		c.limiter.RecordRateLimitError(seconds)
		c.logger.Warn("Google Calendar rate limit hit", "op", op, "retry_after_seconds", seconds)
	} else {
		c.logger.Error("Google Calendar request failed", "op", op, "error", err)
	}
	return wrapError(op, err)
}
