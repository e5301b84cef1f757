package core

import (
	"errors"
	"fmt"
)

// Error taxonomy. Workflow transitions and store mutations wrap one of these
// sentinels, so callers can match with errors.Is and decide between an inline
// message and a fallback.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("invalid input")

	// ErrBackendUnavailable marks network/query failures. Read paths recover
	// by substituting static fallback data, write paths surface it.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
