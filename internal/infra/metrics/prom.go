package metrics

import (
	"errors"
	"time"

	"resource-scheduler/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records booking decisions in Prometheus metrics.
type PromRecorder struct {
	decisions *prometheus.CounterVec
	checks    *prometheus.HistogramVec
	retries   *prometheus.CounterVec
}

// NewPromRecorder registers booking metrics on reg, or the default registerer when
// reg is nil. Collectors that are already registered are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_decisions_total",
		Help: "Booking decisions by operation and outcome",
	}, []string{"operation", "outcome"})
	checks := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "booking_check_duration_seconds",
		Help:    "Time spent loading occupancy and checking a candidate span",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	retries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_tx_retries_total",
		Help: "Booking transactions retried after lock contention, by reason",
	}, []string{"reason"})

	var err error
	if decisions, err = register(reg, decisions); err != nil {
		return nil, err
	}
	if checks, err = register(reg, checks); err != nil {
		return nil, err
	}
	if retries, err = register(reg, retries); err != nil {
		return nil, err
	}

	return &PromRecorder{decisions: decisions, checks: checks, retries: retries}, nil
}

// register returns the collector already registered under the same name, if any.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (r *PromRecorder) RecordDecision(operation, outcome string) {
	r.decisions.WithLabelValues(operation, outcome).Inc()
}

func (r *PromRecorder) ObserveCheck(operation string, elapsed time.Duration) {
	r.checks.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func (r *PromRecorder) ObserveRetry(reason string) {
	r.retries.WithLabelValues(reason).Inc()
}

var _ shared.DecisionRecorder = (*PromRecorder)(nil)
