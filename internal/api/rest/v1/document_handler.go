package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/pkg/logger"
)

// DocumentHandler defines the interface for handling agreement-related operations
type DocumentHandler interface {
	GetActive(ctx *gin.Context)
	Sign(ctx *gin.Context)
	ListSignatures(ctx *gin.Context)
}

type documentHandler struct {
	documentService documents.DocumentService
	logger          logger.Logger
}

// NewDocumentHandler creates a new documentHandler
func NewDocumentHandler(documentService documents.DocumentService, logger logger.Logger) DocumentHandler {
	return &documentHandler{
		documentService: documentService,
		logger:          logger,
	}
}

// GetActive handles the GET request for the active agreement of a kind
// @Summary Get the active NDA or contract
// @Tags Document
// @Produce json
// @Param kind path string true "nda or contract"
// @Success 200 {object} DocumentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /documents/{kind} [get]
func (handler *documentHandler) GetActive(ctx *gin.Context) {
	kind := documents.Kind(ctx.Param("kind"))
	if !kind.Valid() {
		respondBadRequest(ctx, fmt.Sprintf("unknown document kind %q", kind))
		return
	}

	doc, err := handler.documentService.GetActive(ctx.Request.Context(), kind)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusOK, NewDocumentResponse(doc))
}

// Sign handles the POST request signing a document
// @Summary Sign an agreement
// @Description Records the signature and advances the caller's onboarding status
// @Tags Document
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param requestBody body SignDocumentRequest true "Typed legal name"
// @Success 201 {object} SignatureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /documents/{id}/signatures [post]
func (handler *documentHandler) Sign(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	documentID, ok := uuidParam(ctx, "id")
	if !ok {
		return
	}

	var request SignDocumentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondBadRequest(ctx, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	sig, err := handler.documentService.Sign(ctx.Request.Context(), documents.SignRequest{
		ProfileID:  principal.Subject,
		DocumentID: documentID,
		SignerName: request.SignerName,
		IPAddress:  ctx.ClientIP(),
		UserAgent:  ctx.Request.UserAgent(),
	})
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	ctx.JSON(http.StatusCreated, NewSignatureResponse(sig))
}

// ListSignatures handles the GET request for the caller's signatures
// @Summary List my signatures
// @Tags Document
// @Produce json
// @Success 200 {array} SignatureResponse
// @Router /signatures [get]
func (handler *documentHandler) ListSignatures(ctx *gin.Context) {
	principal, ok := mustPrincipal(ctx)
	if !ok {
		return
	}

	sigs, err := handler.documentService.ListSignatures(ctx.Request.Context(), principal.Subject)
	if err != nil {
		respondError(ctx, handler.logger, err)
		return
	}

	resp := make([]SignatureResponse, 0, len(sigs))
	for _, s := range sigs {
		resp = append(resp, NewSignatureResponse(s))
	}
	ctx.JSON(http.StatusOK, resp)
}
