package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// ProfileHandler defines the interface for handling profile-related operations
type ProfileHandler interface {
	Register(ctx *gin.Context)
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
}

// profileHandler represents the handler for the caller's own profile
type profileHandler struct {
	profileService profiles.ProfileService
	logger         logger.Logger
}

// NewProfileHandler creates a new profileHandler
func NewProfileHandler(profileService profiles.ProfileService, logger logger.Logger) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Register handles the POST request to create the caller's profile
// @Summary Register the authenticated user
// @Description Create a profile in pending_nda for the token subject, or return the existing one
// @Tags Profile
// @Accept json
// @Produce json
// @Param requestBody body RegisterProfileRequest false "Contact details"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /profile [post]
func (handler *profileHandler) Register(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	var request RegisterProfileRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
			return
		}
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	email := request.Email
	if email == "" {
		email = principal.Email
	}
	fullName := request.FullName
	if fullName == "" {
		fullName = principal.Name
	}

	profile, err := handler.profileService.Register(ctx.Request.Context(), principal.Subject, email, fullName)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// Get handles the GET request for the caller's profile
// @Summary Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile [get]
func (handler *profileHandler) Get(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	profile, err := handler.profileService.GetByID(ctx.Request.Context(), principal.Subject)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// Update handles the PATCH request for the caller's contact details
// @Summary Update contact details
// @Tags Profile
// @Accept json
// @Produce json
// @Param requestBody body UpdateProfileRequest true "Contact details"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /profile [patch]
func (handler *profileHandler) Update(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	var request UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	profile, err := handler.profileService.UpdateContact(ctx.Request.Context(), principal.Subject, request.ToContactUpdate())
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}
