package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/profiles"
)

// Transactor runs fn atomically. Repositories called with the ctx passed to
// fn take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// requireAdmin returns ErrForbidden unless adminID names an admin profile.
func requireAdmin(ctx context.Context, repo profiles.ProfileRepository, adminID string) (*profiles.Profile, error) {
	admin, err := repo.GetByID(ctx, adminID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown profile %s", apperrors.ErrForbidden, adminID)
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsAdmin() {
		return nil, fmt.Errorf("%w: profile %s is not an admin", apperrors.ErrForbidden, adminID)
	}
	return admin, nil
}
