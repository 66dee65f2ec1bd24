package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Database & Storage Specific Errors
var (
	ErrStoreUnavailable   = errors.New("no content store configured")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// NewStoreUnavailableError is returned by every store operation when the
// process runs without a configured database. Routed paths never hit it in
// practice (the API routes are not registered in static mode), but direct
// callers of the store contract still get a fast, explicit failure instead
// of a hang or a silent no-op.
func NewStoreUnavailableError(operation string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusServiceUnavailable,
		err:        ErrStoreUnavailable,
		Details:    fmt.Sprintf("cannot %s: running in static mode", operation),
	}
}

// NewDatabaseError wraps an underlying persistence failure with the
// operation and entity for logging. The details are never surfaced to API
// callers, only the generic message.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil && strings.Contains(cause.Error(), "connection") {
		return &ApiErr{
			StatusCode: http.StatusServiceUnavailable,
			err:        ErrDatabaseConnection,
			Details:    details,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

func IsStoreUnavailable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}
