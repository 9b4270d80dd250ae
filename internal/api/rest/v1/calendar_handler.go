package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// CalendarHandler defines the interface for availability lookups
type CalendarHandler interface {
	Availability(ctx *gin.Context)
}

type calendarHandler struct {
	availabilityService scheduling.AvailabilityService
	logger              logger.Logger
}

// NewCalendarHandler creates a new calendarHandler
func NewCalendarHandler(availabilityService scheduling.AvailabilityService, logger logger.Logger) CalendarHandler {
	return &calendarHandler{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Availability handles the GET request for free consultation slots
// @Summary List free consultation slots
// @Description Dates are calendar days in the business timezone, both inclusive
// @Tags Calendar
// @Produce json
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /calendar/availability [get]
func (handler *calendarHandler) Availability(ctx *gin.Context) {
	from, err := parseDate(ctx.Query("start"))
	if err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid start: %v", err))
		return
	}
	to, err := parseDate(ctx.Query("end"))
	if err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid end: %v", err))
		return
	}

	slots, err := handler.availabilityService.Slots(ctx.Request.Context(), from, to)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewAvailabilityResponse(slots, handler.availabilityService.Rules()))
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return time.Parse(time.DateOnly, value)
}
