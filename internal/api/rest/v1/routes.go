package v1

import (
	"net/http"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/infrastructure/auth"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	verifier auth.TokenVerifier,
	profileService profiles.ProfileService,
	documentService documents.DocumentService,
	availabilityService scheduling.AvailabilityService,
	bookingService bookings.BookingService,
	logger logger.Logger) {

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
	})

	v1 := r.Group(BasePath) // lookup in version file
	v1.Use(AuthMiddleware(verifier, logger))

	// Profile Routes
	profileHandler := NewProfileHandler(profileService, logger)
	v1.POST("/profile", profileHandler.Register)
	v1.GET("/profile", profileHandler.Get)
	v1.PATCH("/profile", profileHandler.Update)

	// Document Routes
	documentHandler := NewDocumentHandler(documentService, logger)
	v1.GET("/documents/:kind", documentHandler.GetActive)
	v1.POST("/documents/:id/signatures", documentHandler.Sign)
	v1.GET("/signatures", documentHandler.ListSignatures)

	// Calendar Routes
	calendarHandler := NewCalendarHandler(availabilityService, logger)
	v1.GET("/calendar/availability", calendarHandler.Availability)

	// Booking Routes
	bookingHandler := NewBookingHandler(bookingService, logger)
	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings", bookingHandler.List)
	v1.DELETE("/bookings/:id", bookingHandler.Cancel)

	// Admin Routes
	adminHandler := NewAdminHandler(profileService, documentService, logger)
	admin := v1.Group("/admin", RequireAdmin(profileService, logger))
	admin.GET("/profiles", adminHandler.ListProfiles)
	admin.POST("/profiles/:id/approve", adminHandler.Approve)
	admin.POST("/profiles/:id/reject", adminHandler.Reject)
	admin.POST("/documents", adminHandler.PublishDocument)
}
