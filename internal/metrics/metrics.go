// Package metrics exposes prometheus counters for hive and section operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/example/hive/internal/core/lifecycle"
)

// Outcome label values.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// Recorder counts service operations by entity, operation and outcome.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hive",
		Name:      "operations_total",
		Help:      "Hive and section service operations by outcome.",
	}, []string{"entity", "operation", "outcome"})

	reg.MustRegister(
		ops,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Recorder{registry: reg, operations: ops}
}

// Observe records one operation; err decides the outcome label.
func (r *Recorder) Observe(entity, operation string, err error) {
	if r == nil {
		return
	}
	r.operations.WithLabelValues(entity, operation, OutcomeOf(err)).Inc()
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Counter returns the counter for one label combination.
func (r *Recorder) Counter(entity, operation, outcome string) prometheus.Counter {
	return r.operations.WithLabelValues(entity, operation, outcome)
}

// OutcomeOf classifies err into an outcome label.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case lifecycle.IsNotFound(err):
		return OutcomeNotFound
	case lifecycle.IsConflict(err):
		return OutcomeConflict
	default:
		return OutcomeError
	}
}
