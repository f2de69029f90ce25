// Package lifecycle contains the pure business rules shared by hives and sections.
// This is part of the Functional Core - no I/O, only pure functions.
package lifecycle

import "errors"

// Error kinds returned by the service layer. Callers classify failures with errors.Is.
var (
	// ErrInvalidArgument is returned when a required service dependency is missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("requested resource not found")

	// ErrConflict is returned for code uniqueness violations and illegal purges.
	ErrConflict = errors.New("requested resource has conflict")
)

// IsNotFound reports whether err is classified as ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is classified as ErrConflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
