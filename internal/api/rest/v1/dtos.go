package v1

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/bookings"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/documents"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/scheduling"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the liveness probe response
type HealthResponse struct {
	Status string `json:"status"`
}

// RegisterProfileRequest carries sign-up details. Empty fields fall back to
// the claims of the bearer token.
type RegisterProfileRequest struct {
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	FullName string `json:"full_name" validate:"max=255"`
}

// Validate for validating RegisterProfileRequest struct
func (r *RegisterProfileRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// UpdateProfileRequest carries editable contact details. Absent fields are
// left unchanged; an empty phone clears it.
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,phone,max=50"`
}

// Validate for validating UpdateProfileRequest struct
func (r *UpdateProfileRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// ToContactUpdate converts the request into the domain update
func (r *UpdateProfileRequest) ToContactUpdate() profiles.ContactUpdate {
	return profiles.ContactUpdate{FullName: r.FullName, Phone: r.Phone}
}

// SignDocumentRequest carries the legal name typed by the signer
type SignDocumentRequest struct {
	SignerName string `json:"signer_name" validate:"required,min=2,max=255"`
}

// Validate for validating SignDocumentRequest struct
func (r *SignDocumentRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// CreateBookingRequest asks for the slot beginning at Start (RFC3339)
type CreateBookingRequest struct {
	Start time.Time `json:"start" validate:"required"`
	Notes string    `json:"notes" validate:"max=2000"`
}

// Validate for validating CreateBookingRequest struct
func (r *CreateBookingRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// RejectProfileRequest explains a rejection
type RejectProfileRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// Validate for validating RejectProfileRequest struct
func (r *RejectProfileRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// PublishDocumentRequest creates a new agreement version
type PublishDocumentRequest struct {
	Kind    string `json:"kind" validate:"required,oneof=nda contract"`
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

// Validate for validating PublishDocumentRequest struct
func (r *PublishDocumentRequest) Validate() error {
	return apperrors.ValidateStruct(r)
}

// ProfileResponse represents a profile
type ProfileResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"full_name"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	Role            string    `json:"role"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
	DateTimeUpdated time.Time `json:"date_time_updated"`
}

// NewProfileResponse maps a profile to its response
func NewProfileResponse(p *profiles.Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		Email:           p.Email,
		FullName:        p.FullName,
		Phone:           p.Phone,
		Status:          string(p.Status),
		Role:            string(p.Role),
		RejectionReason: p.RejectionReason,
		DateTimeCreated: p.DateTimeCreated,
		DateTimeUpdated: p.DateTimeUpdated,
	}
}

// DocumentResponse represents an agreement
type DocumentResponse struct {
	ID              string    `json:"id"`
	Kind            string    `json:"kind"`
	Title           string    `json:"title"`
	Version         int       `json:"version"`
	Content         string    `json:"content"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewDocumentResponse maps a document to its response
func NewDocumentResponse(d *documents.Document) DocumentResponse {
	return DocumentResponse{
		ID:              d.ID,
		Kind:            string(d.Kind),
		Title:           d.Title,
		Version:         d.Version,
		Content:         d.Content,
		DateTimeCreated: d.DateTimeCreated,
	}
}

// SignatureResponse represents a recorded signature
type SignatureResponse struct {
	ID             string    `json:"id"`
	DocumentID     string    `json:"document_id"`
	DocumentKind   string    `json:"document_kind"`
	SignerName     string    `json:"signer_name"`
	DateTimeSigned time.Time `json:"date_time_signed"`
}

// NewSignatureResponse maps a signature to its response
func NewSignatureResponse(s *documents.Signature) SignatureResponse {
	return SignatureResponse{
		ID:             s.ID,
		DocumentID:     s.DocumentID,
		DocumentKind:   string(s.DocumentKind),
		SignerName:     s.SignerName,
		DateTimeSigned: s.DateTimeSigned,
	}
}

// SlotResponse is one bookable consultation slot
type SlotResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AvailabilityResponse lists the free slots of a date range
type AvailabilityResponse struct {
	Timezone    string         `json:"timezone"`
	SlotMinutes int            `json:"slot_minutes"`
	Slots       []SlotResponse `json:"slots"`
}

// NewAvailabilityResponse maps slots and the rules that produced them
func NewAvailabilityResponse(slots []scheduling.Interval, rules scheduling.Rules) AvailabilityResponse {
	resp := AvailabilityResponse{
		SlotMinutes: int(rules.SlotLength / time.Minute),
		Slots:       make([]SlotResponse, 0, len(slots)),
	}
	if rules.Location != nil {
		resp.Timezone = rules.Location.String()
	}
	for _, s := range slots {
		resp.Slots = append(resp.Slots, SlotResponse{Start: s.Start, End: s.End})
	}
	return resp
}

// BookingResponse represents a consultation booking
type BookingResponse struct {
	ID              string    `json:"id"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewBookingResponse maps a booking to its response
func NewBookingResponse(b *bookings.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Status:          string(b.Status),
		Notes:           b.Notes,
		DateTimeCreated: b.DateTimeCreated,
	}
}
