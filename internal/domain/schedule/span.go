package schedule

import (
	"github.com/google/uuid"
)

// Kind tags which occupancy source a Span was projected from.
type Kind string

const (
	KindIntervention   Kind = "intervention"
	KindUnavailability Kind = "unavailability"
	KindRecurring      Kind = "recurring-occurrence"
)

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	switch k {
	case KindIntervention, KindUnavailability, KindRecurring:
		return true
	default:
		return false
	}
}

// Span is the common projection of interventions, unavailabilities and
// recurring occurrences used for conflict checking.
//
// For recurring occurrences ID is the source rule id; occurrences are never persisted.
type Span struct {
	kind       Kind
	id         uuid.UUID
	resourceID uuid.UUID
	timeSpan   TimeSpan
	label      string
}

func InterventionSpan(id, resourceID uuid.UUID, ts TimeSpan, title string) Span {
	return Span{kind: KindIntervention, id: id, resourceID: resourceID, timeSpan: ts, label: title}
}

func UnavailabilitySpan(id, resourceID uuid.UUID, ts TimeSpan, reason string) Span {
	return Span{kind: KindUnavailability, id: id, resourceID: resourceID, timeSpan: ts, label: reason}
}

func OccurrenceSpan(ruleID, resourceID uuid.UUID, ts TimeSpan, reason string) Span {
	return Span{kind: KindRecurring, id: ruleID, resourceID: resourceID, timeSpan: ts, label: reason}
}

func (s Span) Kind() Kind            { return s.kind }
func (s Span) ID() uuid.UUID         { return s.id }
func (s Span) ResourceID() uuid.UUID { return s.resourceID }
func (s Span) TimeSpan() TimeSpan    { return s.timeSpan }
func (s Span) Label() string         { return s.label }
func (s Span) IsRecurring() bool     { return s.kind == KindRecurring }

// FindConflict returns the first span in spans that belongs to resourceID, is not
// excludeID, and overlaps candidate.
func FindConflict(resourceID uuid.UUID, candidate TimeSpan, spans []Span, excludeID uuid.UUID) (Span, bool) {
	for _, s := range spans {
		if s.resourceID != resourceID {
			continue
		}
		if excludeID != uuid.Nil && s.id == excludeID {
			continue
		}
		if candidate.Overlaps(s.timeSpan) {
			return s, true
		}
	}
	return Span{}, false
}
