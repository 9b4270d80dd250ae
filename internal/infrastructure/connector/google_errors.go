package connector

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"google.golang.org/api/googleapi"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
)

// Google API errors
var (
	// ErrUnauthorized indicates invalid or expired service-account credentials.
	ErrUnauthorized = errors.New("google: unauthorised (invalid credentials)")

	// ErrForbidden indicates the service account cannot access the calendar.
	ErrForbidden = errors.New("google: forbidden (insufficient permissions)")

	// ErrNotFound indicates the calendar or event does not exist.
	ErrNotFound = errors.New("google: resource not found")

	// ErrRateLimited indicates the API rate limit or quota was exceeded.
	ErrRateLimited = fmt.Errorf("google: rate limit exceeded: %w", scheduling.ErrCalendarUnavailable)
)

// IsNotFound returns true if the error indicates a missing resource.
// Deleted events answer 410 Gone, which counts as missing as well.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
	}
	return false
}

// IsRateLimited returns true if the error indicates rate limiting. Google
// reports per-user limits as 403 with a rateLimitExceeded reason.
func IsRateLimited(err error) bool {
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	if gerr.Code == http.StatusTooManyRequests {
		return true
	}
	if gerr.Code == http.StatusForbidden {
		for _, item := range gerr.Errors {
			if item.Reason == "rateLimitExceeded" || item.Reason == "userRateLimitExceeded" {
				return true
			}
		}
	}
	return false
}

// retryAfter returns the Retry-After header of a Google error in seconds, or 0.
func retryAfter(err error) int {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) || gerr.Header == nil {
		return 0
	}
	seconds, convErr := strconv.Atoi(gerr.Header.Get("Retry-After"))
	if convErr != nil {
		return 0
	}
	return seconds
}

// wrapError converts a Google API error to one of the errors above, keeping
// the original message for the logs.
func wrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if IsRateLimited(err) {
		return fmt.Errorf("%s: %w", op, ErrRateLimited)
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch gerr.Code {
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w: %s", op, ErrUnauthorized, gerr.Message)
	case http.StatusForbidden:
		return fmt.Errorf("%s: %w: %s", op, ErrForbidden, gerr.Message)
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%s: %w: %s", op, ErrNotFound, gerr.Message)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
