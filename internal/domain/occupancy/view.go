package occupancy

import (
	"slices"
	"time"

	"resource-scheduler/internal/domain/intervention"
	"resource-scheduler/internal/domain/schedule"
	"resource-scheduler/internal/domain/unavailability"

	"github.com/google/uuid"
)

// Merge concatenates the three sources in this order and stable-sorts by start.
// Spans starting at the same instant keep their concatenation order.
func Merge(interventions, unavailabilities, occurrences []schedule.Span) []schedule.Span {
	out := make([]schedule.Span, 0, len(interventions)+len(unavailabilities)+len(occurrences))
	out = append(out, interventions...)
	out = append(out, unavailabilities...)
	out = append(out, occurrences...)
	slices.SortStableFunc(out, func(a, b schedule.Span) int {
		return a.TimeSpan().Start().Compare(b.TimeSpan().Start())
	})
	return out
}

// Build projects stored records of one resource into the ordered occupancy of [from, to).
// Records of other resources or outside the window are dropped; rules are expanded over the window by exp.
func Build(
	exp unavailability.Expander,
	resourceID uuid.UUID,
	from, to time.Time,
	interventions []*intervention.Intervention,
	unavailabilities []*unavailability.Unavailability,
	rules []*unavailability.RecurringRule,
) []schedule.Span {
	window, err := schedule.NewTimeSpan(from, to)
	if err != nil {
		return nil
	}

	ivSpans := make([]schedule.Span, 0, len(interventions))
	for _, iv := range interventions {
		if iv.ResourceID() == resourceID && iv.TimeSpan().Overlaps(window) {
			ivSpans = append(ivSpans, iv.Span())
		}
	}

	unSpans := make([]schedule.Span, 0, len(unavailabilities))
	for _, u := range unavailabilities {
		if u.ResourceID() == resourceID && u.TimeSpan().Overlaps(window) {
			unSpans = append(unSpans, u.Span())
		}
	}

	var occSpans []schedule.Span
	for _, r := range rules {
		if r.ResourceID() != resourceID {
			continue
		}
		for _, occ := range exp.Expand(r, from, to) {
			occSpans = append(occSpans, occ.Span())
		}
	}

	return Merge(ivSpans, unSpans, occSpans)
}
