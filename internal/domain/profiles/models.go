package profiles

import (
	"fmt"
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
)

// Profile is the application's user record, keyed by the identity
// provider's subject.
type Profile struct {
	ID              string    `validate:"required,max=255"`
	Email           string    `validate:"required,email,max=255"`
	FullName        string    `validate:"max=255"`
	Phone           string    `validate:"omitempty,phone,max=50"`
	Status          Status    `validate:"required"`
	Role            Role      `validate:"required,oneof=member admin"`
	RejectionReason string    `validate:"max=1000"`
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time `validate:"required"`
}

// NewProfile returns a freshly signed-up member at the start of the pipeline.
func NewProfile(id, email, fullName string, now time.Time) *Profile {
	return &Profile{
		ID:              id,
		Email:           email,
		FullName:        fullName,
		Status:          StatusPendingNDA,
		Role:            RoleMember,
		DateTimeCreated: now,
		DateTimeUpdated: now,
	}
}

// Validate for validating Profile struct
func (p *Profile) Validate() error {
	if err := apperrors.ValidateStruct(p); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, p.Status)
	}
	return nil
}

// IsAdmin reports whether the profile may perform staff operations.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ContactUpdate carries the member-editable fields. A nil field is left as
// stored.
type ContactUpdate struct {
	FullName *string `validate:"omitempty,max=255"`
	Phone    *string `validate:"omitempty,phone,max=50"`
}

// Empty reports whether the update changes nothing.
func (u ContactUpdate) Empty() bool {
	return u.FullName == nil && u.Phone == nil
}

// Validate for validating ContactUpdate struct
func (u ContactUpdate) Validate() error {
	return apperrors.ValidateStruct(u)
}

// Profile list sort columns
const (
	SortByDateTimeCreated = "date_time_created"
	SortByEmail           = "email"
	SortByStatus          = "status"
)

// ProfileQuery filters the admin profile listing.
type ProfileQuery struct {
	Status    Status `validate:"omitempty"`
	Limit     int    `validate:"gte=0,lte=500"`
	Offset    int    `validate:"gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created email status"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewProfileQuery returns the default listing: newest first, 50 per page.
func NewProfileQuery() *ProfileQuery {
	return &ProfileQuery{
		Limit:     50,
		SortBy:    SortByDateTimeCreated,
		SortOrder: "desc",
	}
}

// Validate for validating ProfileQuery struct
func (q *ProfileQuery) Validate() error {
	if err := apperrors.ValidateStruct(q); err != nil {
		return err
	}
	if q.Status != "" && !q.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, q.Status)
	}
	return nil
}
