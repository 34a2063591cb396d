package metrics

import (
	"errors"
	"net/http"
	"time"

	solver "github.com/gehtsoft-usa/go_ballisticsolver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels
const (
	OutcomeOK                = "ok"
	OutcomeInvalidInput      = "invalid_input"
	OutcomeZeroNotAchievable = "zero_not_achievable"
	OutcomeDivergence        = "divergence"
	OutcomeError             = "error"
)

// Collector counts solver calls and their latency on its own registry.
type Collector struct {
	registry      *prometheus.Registry
	solveDuration *prometheus.HistogramVec
	solvesTotal   *prometheus.CounterVec
}

func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		solveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ballistics_solve_duration_seconds",
				Help:    "Time spent solving a shot",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"},
		),
		solvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ballistics_solves_total",
				Help: "Total number of solver calls",
			},
			[]string{"operation", "drag_table", "outcome"},
		),
	}

	m.registry.MustRegister(m.solveDuration)
	m.registry.MustRegister(m.solvesTotal)

	return m
}

// Outcome maps a solver error to its label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, solver.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, solver.ErrZeroNotAchievable):
		return OutcomeZeroNotAchievable
	case errors.Is(err, solver.ErrTrajectoryDivergence):
		return OutcomeDivergence
	default:
		return OutcomeError
	}
}

// RecordSolve records one call of the operation (solve, table, trajectory) for the drag table.
func (m *Collector) RecordSolve(operation string, dragTable byte, duration time.Duration, err error) {
	m.solveDuration.WithLabelValues(operation).Observe(duration.Seconds())
	m.solvesTotal.WithLabelValues(operation, solver.DragTableName(dragTable), Outcome(err)).Inc()
}

// Registry returns the registry the collector metrics are registered in.
func (m *Collector) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collector registry in the Prometheus exposition format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
