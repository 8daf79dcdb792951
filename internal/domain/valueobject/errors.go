package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Sentinel errors and typed domain errors
// ---------------------------------------------------------------------------

var (
	// ErrInvalidStatusTransition is the sentinel every TransitionError unwraps to.
	ErrInvalidStatusTransition = errors.New("invalid status transition")

	// ErrVersionConflict signals that a compare-and-swap write lost the race.
	// Callers are expected to reload the application and retry.
	ErrVersionConflict = errors.New("application was modified concurrently")

	// ErrApplicationNotFound signals a lookup miss in the repository.
	ErrApplicationNotFound = errors.New("loan application not found")
)

// TransitionError reports an attempted move the transition table forbids.
// The application is left unchanged when it is returned.
type TransitionError struct {
	From ApplicationStatus
	To   ApplicationStatus
}

func (e TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func (e TransitionError) Unwrap() error { return ErrInvalidStatusTransition }

// ValidationError reports a caller-correctable input problem, naming the
// offending field so downstream reviewers know exactly what to fix.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(field, format string, args ...any) ValidationError {
	return ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
