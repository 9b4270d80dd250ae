package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// BookingHandler defines the interface for handling consultation bookings
type BookingHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Cancel(ctx *gin.Context)
}

type bookingHandler struct {
	bookingService bookings.BookingService
	logger         logger.Logger
}

// NewBookingHandler creates a new bookingHandler
func NewBookingHandler(bookingService bookings.BookingService, logger logger.Logger) BookingHandler {
	return &bookingHandler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Create handles the POST request booking a consultation
// @Summary Book a consultation
// @Tags Booking
// @Accept json
// @Produce json
// @Param requestBody body CreateBookingRequest true "Slot start (RFC3339) and notes"
// @Success 201 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /bookings [post]
func (handler *bookingHandler) Create(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	var request CreateBookingRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	booking, err := handler.bookingService.Book(ctx.Request.Context(), principal.Subject, request.Start, request.Notes)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewBookingResponse(booking))
}

// List handles the GET request for the caller's bookings
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Success 200 {array} BookingResponse
// @Router /bookings [get]
func (handler *bookingHandler) List(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	list, err := handler.bookingService.ListByProfile(ctx.Request.Context(), principal.Subject)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	resp := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, NewBookingResponse(b))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Cancel handles the DELETE request for a booking
// @Summary Cancel a scheduled consultation
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /bookings/{id} [delete]
func (handler *bookingHandler) Cancel(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	bookingID, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	booking, err := handler.bookingService.Cancel(ctx.Request.Context(), principal.Subject, bookingID)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewBookingResponse(booking))
}
