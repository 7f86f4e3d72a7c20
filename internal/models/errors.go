// ABOUTME: Error taxonomy shared by the core and its transports
// ABOUTME: Distinguishes validation failures, missing records, and persistence faults
package models

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a missing movie or history entry. Callers test for it
// with errors.Is; transports map it to their own not-found representation.
var ErrNotFound = errors.New("not found")

// ValidationError reports a query that fails validation. It is surfaced
// directly to the caller and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid query: " + e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError wraps a fault from the history store's backing storage.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("history %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
