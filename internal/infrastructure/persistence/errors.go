package persistence

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/michaelddmanuel/SmartFitter-sub000/internal/domain/apperrors"
)

const (
	pgUniqueViolation           = "23505"
	pgInvalidTextRepresentation = "22P02"
)

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isMalformedKey reports a key Postgres could not parse, such as a non-UUID
// string compared against a uuid column. No row can match it.
func isMalformedKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation
}

// translate maps driver errors onto the shared sentinel errors.
func translate(err error, op, entity, id string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), isMalformedKey(err):
		return fmt.Errorf("%w: %s with ID %s", apperrors.ErrNotFound, entity, id)
	case isUniqueViolation(err):
		return fmt.Errorf("%w: %s %s already exists", apperrors.ErrConflict, entity, id)
	default:
		return fmt.Errorf("failed to %s %s: %w", op, entity, err)
	}
}
