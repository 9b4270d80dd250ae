package profiles

import (
	"context"
	"time"
)

// ProfileService manages sign-up, contact details and admin review.
type ProfileService interface {
	// Register creates a profile in StatusPendingNDA, or returns the existing
	// profile for id unchanged.
	Register(ctx context.Context, id, email, fullName string) (*Profile, error)

	// GetByID returns the profile for id.
	GetByID(ctx context.Context, id string) (*Profile, error)

	// UpdateContact changes the name and/or phone number. Fields left nil in
	// update keep their stored value. Status and role are untouched.
	UpdateContact(ctx context.Context, id string, update ContactUpdate) (*Profile, error)

	// List returns profiles matching query. Admin only.
	List(ctx context.Context, adminID string, query *ProfileQuery) ([]*Profile, error)

	// Approve moves a profile from pending_approval to pending_contract. Admin only.
	Approve(ctx context.Context, adminID, id string) (*Profile, error)

	// Reject moves a profile from pending_approval to rejected. Admin only.
	Reject(ctx context.Context, adminID, id, reason string) (*Profile, error)

	// SetRole grants or revokes staff rights. Operator tooling only, never
	// exposed over HTTP.
	SetRole(ctx context.Context, id string, role Role) (*Profile, error)
}

// ProfileRepository persists profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context, query *ProfileQuery) ([]*Profile, error)
	// UpdateContact writes only the contact columns present in update and
	// returns the stored profile.
	UpdateContact(ctx context.Context, id string, update ContactUpdate, at time.Time) (*Profile, error)
	// UpdateRole writes only the role column.
	UpdateRole(ctx context.Context, id string, role Role, at time.Time) (*Profile, error)
	// SetRejectionReason writes only the rejection reason column.
	SetRejectionReason(ctx context.Context, id, reason string, at time.Time) (*Profile, error)
	// TransitionStatus moves the profile from `from` to `to` only if it is
	// still in `from`, and returns the updated profile. A profile in any other
	// status yields apperrors.ErrInvalidTransition.
	TransitionStatus(ctx context.Context, id string, from, to Status) (*Profile, error)
}
