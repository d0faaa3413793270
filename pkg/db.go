package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return hasPgErrorCode(err, "23505")
}

// IsInvalidTextRepresentationError reports malformed input rejected by postgres,
// e.g. a non-numeric weight or an invalid date literal.
func IsInvalidTextRepresentationError(err error) bool {
	return hasPgErrorCode(err, "22P02") || hasPgErrorCode(err, "22007") || hasPgErrorCode(err, "22008")
}

func hasPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}
