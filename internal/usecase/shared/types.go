package shared

import (
	"time"
)

// Booking operations reported to a DecisionRecorder.
const (
	OpCheckAvailable        = "check_available"
	OpReserveIntervention   = "reserve_intervention"
	OpUpdateIntervention    = "update_intervention"
	OpReserveUnavailability = "reserve_unavailability"
	OpUpdateUnavailability  = "update_unavailability"
	OpCreateRecurringRule   = "create_recurring_rule"
)

// Decision outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// DecisionRecorder receives one call per guarded booking decision.
type DecisionRecorder interface {
	RecordDecision(operation, outcome string)
	ObserveCheck(operation string, elapsed time.Duration)
}

type NopRecorder struct{}

func (NopRecorder) RecordDecision(string, string)      {}
func (NopRecorder) ObserveCheck(string, time.Duration) {}
