// Package metrics exports solver activity as Prometheus metrics.
//
// A Collector registers its metrics on the Registerer given to New and
// implements solver.Observer, so it can be attached to any solve with
// solver.WithObserver.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/potflow/solver"
)

// Collector is a solver.Observer backed by Prometheus metrics.
type Collector struct {
	Solves        *prometheus.CounterVec
	Guesses       prometheus.Counter
	Iterations    prometheus.Histogram
	Terminations  *prometheus.CounterVec
	BasisSize     prometheus.Gauge
	BasisBuilds   prometheus.Counter
	SolveDuration prometheus.Histogram
}

var _ solver.Observer = (*Collector)(nil)

// New creates the metrics and registers them on reg. It panics if any of
// them is already registered there.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "potflow_solves_total",
			Help: "Total number of min-cost-flow solves, labelled by outcome.",
		}, []string{"status"}),

		Guesses: f.NewCounter(prometheus.CounterOpts{
			Name: "potflow_guesses_total",
			Help: "Total number of target-cost guesses attempted.",
		}),

		Iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "potflow_attempt_iterations",
			Help:    "Potential-reduction steps taken per attempt.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		}),

		Terminations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "potflow_terminations_total",
			Help: "Attempt terminations, labelled by reason.",
		}, []string{"reason"}),

		BasisSize: f.NewGauge(prometheus.GaugeOpts{
			Name: "potflow_cycle_basis_size",
			Help: "Number of cycles in the most recently built basis.",
		}),

		BasisBuilds: f.NewCounter(prometheus.CounterOpts{
			Name: "potflow_cycle_basis_builds_total",
			Help: "Total number of cycle bases built.",
		}),

		SolveDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "potflow_solve_duration_seconds",
			Help:    "Wall-clock duration of a solve.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 9),
		}),
	}
}

// BasisBuilt implements solver.Observer.
func (c *Collector) BasisBuilt(cycles int) {
	c.BasisSize.Set(float64(cycles))
	c.BasisBuilds.Inc()
}

// AttemptFinished implements solver.Observer.
func (c *Collector) AttemptFinished(a solver.Attempt) {
	c.Guesses.Inc()
	c.Iterations.Observe(float64(a.Iterations))
	c.Terminations.WithLabelValues(a.Termination.String()).Inc()
}

// SolveFinished implements solver.Observer.
func (c *Collector) SolveFinished(_ solver.Result, elapsed time.Duration, err error) {
	status := "ok"
	switch {
	case errors.Is(err, solver.ErrInfeasibleRounding):
		status = "infeasible"
	case err != nil:
		status = "error"
	}
	c.Solves.WithLabelValues(status).Inc()
	c.SolveDuration.Observe(elapsed.Seconds())
}
