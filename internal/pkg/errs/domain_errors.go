package errs

import "errors"

// Error taxonomy shared by the domain, usecase and transport layers.
// Concrete errors are marked with one of these so callers can branch with errors.Is.
var (
	// ErrValidation marks malformed input. Never retried.
	ErrValidation = errors.New("validation error")
	// ErrConflict marks a well-formed request that overlaps existing occupancy.
	ErrConflict = errors.New("conflict")
	// ErrNotFound marks a referenced resource, intervention, unavailability or rule that does not exist.
	ErrNotFound = errors.New("not found")
)

func IsValidation(err error) bool { return Is(err, ErrValidation) }
func IsConflict(err error) bool   { return Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return Is(err, ErrNotFound) }
