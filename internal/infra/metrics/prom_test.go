//go:build unit

package metrics

import (
	"strings"
	"testing"
	"time"

	"resource-scheduler/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromRecorder_RecordDecision(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.RecordDecision(shared.OpReserveIntervention, shared.OutcomeAccepted)
	rec.RecordDecision(shared.OpReserveIntervention, shared.OutcomeConflict)
	rec.RecordDecision(shared.OpReserveIntervention, shared.OutcomeConflict)

	expected := `
# HELP booking_decisions_total Booking decisions by operation and outcome
# TYPE booking_decisions_total counter
booking_decisions_total{operation="reserve_intervention",outcome="accepted"} 1
booking_decisions_total{operation="reserve_intervention",outcome="conflict"} 2
`
	assert.NoError(t, testutil.CollectAndCompare(rec.decisions, strings.NewReader(expected)))
}

func TestPromRecorder_ObserveCheck(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.ObserveCheck(shared.OpCheckAvailable, 3*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(rec.checks))
}

func TestNewPromRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromRecorder(reg)
	require.NoError(t, err)
	second, err := NewPromRecorder(reg)
	require.NoError(t, err)

	first.RecordDecision(shared.OpCreateRecurringRule, shared.OutcomeInvalid)
	second.RecordDecision(shared.OpCreateRecurringRule, shared.OutcomeInvalid)

	assert.Equal(t, float64(2), testutil.ToFloat64(first.decisions.WithLabelValues(shared.OpCreateRecurringRule, shared.OutcomeInvalid)))
}

func TestPromRecorder_ObserveRetry(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPromRecorder(reg)
	require.NoError(t, err)

	rec.ObserveRetry("deadlock")
	rec.ObserveRetry("deadlock")
	rec.ObserveRetry("serialization_failure")

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.retries.WithLabelValues("deadlock")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.retries.WithLabelValues("serialization_failure")))
}
