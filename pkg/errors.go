package pkg

import (
	"errors"
	"net/http"
)

// Error kinds shared by all feature packages. Package level sentinels wrap one of these
// (fmt.Errorf("muscle %w", ErrNotFound)), and the HTTP boundary maps them with StatusFor.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// StatusFor translates an error into the small, closed set of status codes the handlers use.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest), IsInvalidTextRepresentationError(err):
		return http.StatusBadRequest
	case IsUniqueViolationError(err):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
