package schedule

import (
	"fmt"

	"resource-scheduler/internal/pkg/errs"
)

// ConflictError reports the existing span a candidate overlaps.
type ConflictError struct {
	Conflicting Span
}

func NewConflictError(conflicting Span) *ConflictError {
	return &ConflictError{Conflicting: conflicting}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time span conflicts with %s %s on resource %s %s",
		e.Conflicting.Kind(), e.Conflicting.ID(), e.Conflicting.ResourceID(), e.Conflicting.TimeSpan())
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrConflict
}
