package shared

import (
	"context"
	"time"

	"resource-scheduler/internal/domain/occupancy"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"
	"resource-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// LoadOccupancy reads everything occupying resourceID during [from, to) and merges it
// into start order. Rules are expanded by exp. Nothing is cached between calls.
func LoadOccupancy(ctx context.Context, s Store, exp unavailability.Expander, resourceID uuid.UUID, from, to time.Time) ([]schedule.Span, error) {
	interventions, err := s.Interventions().ListOverlapping(ctx, resourceID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "list interventions")
	}
	unavailabilities, err := s.Unavailabilities().ListOverlapping(ctx, resourceID, from, to)
	if err != nil {
		return nil, errs.Wrap(err, "list unavailabilities")
	}
	rules, err := s.RecurringRules().ListByResource(ctx, resourceID)
	if err != nil {
		return nil, errs.Wrap(err, "list recurring rules")
	}
	return occupancy.Build(exp, resourceID, from, to, interventions, unavailabilities, rules), nil
}

// CheckAvailable fails with *schedule.ConflictError when candidate overlaps anything on
// resourceID other than the span identified by excludeID.
func CheckAvailable(ctx context.Context, s Store, exp unavailability.Expander, resourceID uuid.UUID, candidate schedule.TimeSpan, excludeID uuid.UUID) error {
	spans, err := LoadOccupancy(ctx, s, exp, resourceID, candidate.Start(), candidate.End())
	if err != nil {
		return err
	}
	if conflicting, found := schedule.FindConflict(resourceID, candidate, spans, excludeID); found {
		return schedule.NewConflictError(conflicting)
	}
	return nil
}
