package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// AdminHandler defines the interface for staff operations
type AdminHandler interface {
	ListProfiles(ctx *gin.Context)
	Approve(ctx *gin.Context)
	Reject(ctx *gin.Context)
	PublishDocument(ctx *gin.Context)
}

type adminHandler struct {
	profileService  profiles.ProfileService
	documentService documents.DocumentService
	logger          logger.Logger
}

// NewAdminHandler creates a new adminHandler
func NewAdminHandler(profileService profiles.ProfileService, documentService documents.DocumentService, logger logger.Logger) AdminHandler {
	return &adminHandler{
		profileService:  profileService,
		documentService: documentService,
		logger:          logger,
	}
}

// ListProfiles handles the GET request listing profiles
// @Summary List profiles for review
// @Tags Admin
// @Produce json
// @Param status query string false "Onboarding status"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param sortBy query string false "date_time_created, email or status"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/profiles [get]
func (handler *adminHandler) ListProfiles(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	query := profiles.NewProfileQuery()
	query.Status = profiles.Status(ctx.Query("status"))
	if v := ctx.Query("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid limit: %v", err))
			return
		}
		query.Limit = limit
	}
	if v := ctx.Query("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			respondBadRequest(ctx, fmt.Sprintf("invalid offset: %v", err))
			return
		}
		query.Offset = offset
	}
	if v := ctx.Query("sortBy"); v != "" {
		query.SortBy = v
	}
	if v := ctx.Query("sortOrder"); v != "" {
		query.SortOrder = v
	}

	list, err := handler.profileService.List(ctx.Request.Context(), principal.Subject, query)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	resp := make([]ProfileResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, NewProfileResponse(p))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Approve handles the POST request approving a profile
// @Summary Approve a member after the consultation
// @Tags Admin
// @Produce json
// @Param id path string true "Profile ID"
// @Success 200 {object} ProfileResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/profiles/{id}/approve [post]
func (handler *adminHandler) Approve(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	profile, err := handler.profileService.Approve(ctx.Request.Context(), principal.Subject, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// Reject handles the POST request rejecting a profile
// @Summary Reject a member after the consultation
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Profile ID"
// @Param requestBody body RejectProfileRequest true "Reason"
// @Success 200 {object} ProfileResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/profiles/{id}/reject [post]
func (handler *adminHandler) Reject(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	var request RejectProfileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	profile, err := handler.profileService.Reject(ctx.Request.Context(), principal.Subject, ctx.Param("id"), request.Reason)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewProfileResponse(profile))
}

// PublishDocument handles the POST request publishing a new agreement version
// @Summary Publish an NDA or contract version
// @Tags Admin
// @Accept json
// @Produce json
// @Param requestBody body PublishDocumentRequest true "Document"
// @Success 201 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /admin/documents [post]
func (handler *adminHandler) PublishDocument(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	var request PublishDocumentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	doc, err := handler.documentService.Publish(ctx.Request.Context(), principal.Subject, documents.Kind(request.Kind), request.Title, request.Content)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewDocumentResponse(doc))
}
