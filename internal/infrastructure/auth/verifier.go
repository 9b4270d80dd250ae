package auth

import (
	"context"
	"errors"
)

// ErrUnauthenticated indicates a missing, malformed or rejected bearer token.
var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the caller identified by a verified token.
type Principal struct {
	Subject string
	Email   string
	Name    string
}

// TokenVerifier validates a raw bearer token.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}
