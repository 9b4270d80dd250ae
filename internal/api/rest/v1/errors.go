package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// StatusFor maps an error returned by the services to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, bookings.ErrSlotUnavailable):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, scheduling.ErrInvalidRange),
		errors.Is(err, scheduling.ErrRangeTooLarge),
		errors.Is(err, scheduling.ErrInvalidSlot):
		return http.StatusBadRequest
	case errors.Is(err, scheduling.ErrCalendarUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes the matching status. Server-side
// failures are reported without details.
func respondError(ctx *gin.Context, log logger.Logger, err error) {
	status := StatusFor(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error("Request failed", "method", ctx.Request.Method, "path", ctx.FullPath(), "status", status, "error", err)
		if status == http.StatusInternalServerError {
			message = "internal server error"
		}
	} else {
		log.Warn("Request rejected", "method", ctx.Request.Method, "path", ctx.FullPath(), "status", status, "error", err)
	}

	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

// uuidParam reads a UUID path parameter, answering 400 when it is malformed.
func uuidParam(ctx *gin.Context, name string) (string, bool) {
	raw := ctx.Param(name)
	if _, err := uuid.Parse(raw); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid %s %q: must be a UUID", name, raw))
		return "", false
	}
	return raw, true
}
