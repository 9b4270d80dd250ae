// Package documents models the agreements a member signs during onboarding
// and the signatures recorded against them.
package documents

import (
	"time"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
)

// Kind identifies which onboarding agreement a document is.
type Kind string

// Document kinds
const (
	KindNDA      Kind = "nda"
	KindContract Kind = "contract"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindNDA || k == KindContract
}

// RequiredStatus is the profile status in which a document of this kind may be signed.
func (k Kind) RequiredStatus() profiles.Status {
	if k == KindContract {
		return profiles.StatusPendingContract
	}
	return profiles.StatusPendingNDA
}

// StatusAfterSigning is the profile status reached once a document of this kind is signed.
func (k Kind) StatusAfterSigning() profiles.Status {
	if k == KindContract {
		return profiles.StatusActive
	}
	return profiles.StatusPendingBooking
}

// Document is a versioned agreement. At most one document per kind is active.
type Document struct {
	ID              string    `validate:"required,uuid4"`
	Kind            Kind      `validate:"required,oneof=nda contract"`
	Title           string    `validate:"required,min=1,max=255"`
	Version         int       `validate:"required,min=1"`
	Content         string    `validate:"required"`
	Active          bool
	CreatedBy       string    `validate:"max=255"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Document struct
func (d *Document) Validate() error {
	return apperrors.ValidateStruct(d)
}

// Signature records that a profile signed a document.
type Signature struct {
	ID             string    `validate:"required,uuid4"`
	DocumentID     string    `validate:"required,uuid4"`
	DocumentKind   Kind      `validate:"required,oneof=nda contract"`
	ProfileID      string    `validate:"required,max=255"`
	SignerName     string    `validate:"required,min=2,max=255"`
	IPAddress      string    `validate:"omitempty,ip"`
	UserAgent      string    `validate:"max=512"`
	DateTimeSigned time.Time `validate:"required"`
}

// Validate for validating Signature struct
func (s *Signature) Validate() error {
	return apperrors.ValidateStruct(s)
}
