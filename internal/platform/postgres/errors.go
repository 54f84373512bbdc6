package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/newshub/newshub/internal/store"
)

// PostgreSQL error codes
const (
	// foreignKeyViolationCode is the PostgreSQL error code for foreign
	// key violations, raised when a write references a missing row.
	foreignKeyViolationCode = "23503"

	// invalidTextRepresentationCode is the PostgreSQL error code raised
	// when a bound value cannot be interpreted as the column's type.
	invalidTextRepresentationCode = "22P02"
)

// MapError maps a database error to the appropriate store sentinel error,
// wrapping the original to preserve context. Classification is by error
// code, never by message text.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w (%s): %v",
				store.ErrReferentialViolation,
				pgErr.ConstraintName,
				err,
			)
		case invalidTextRepresentationCode:
			return fmt.Errorf("%w: %v", store.ErrMalformedInput, err)
		}
	}

	return err
}

// IsForeignKeyViolation checks if the given error is a PostgreSQL foreign
// key constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// IsInvalidTextRepresentation checks if the given error is a PostgreSQL
// type/format violation for a bound value.
func IsInvalidTextRepresentation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentationCode
}
