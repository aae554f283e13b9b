package bootstrap

import (
	"resource-scheduler/internal/infra/metrics"
	"resource-scheduler/internal/pkg/config"
	"resource-scheduler/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		NewDecisionRecorder,
	),
)

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewDecisionRecorder(cfg config.Config, reg *prometheus.Registry) (shared.DecisionRecorder, error) {
	if !cfg.Metrics.Enabled {
		return shared.NopRecorder{}, nil
	}
	return metrics.NewPromRecorder(reg)
}
