package partition

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	solveDuration  *prometheus.HistogramVec
	cohortsSolved  *prometheus.CounterVec
	nodesExplored  prometheus.Histogram
	repairsApplied prometheus.Counter
)

// newCollectors creates new metric collectors.
func newCollectors() (*prometheus.HistogramVec, *prometheus.CounterVec, prometheus.Histogram, prometheus.Counter) {
	dur := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cohort_solve_duration_seconds",
			Help:    "Wall-clock duration of a single cohort solve",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status"},
	)
	solved := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cohorts_solved_total",
			Help: "Number of cohort solves by terminal status",
		},
		[]string{"status"},
	)
	nodes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solver_nodes_explored",
			Help:    "Search nodes explored per cohort solve",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)
	repairs := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "placeholders_injected_total",
			Help: "Number of placeholder players injected by the conditioner",
		},
	)
	return dur, solved, nodes, repairs
}

func init() {
	solveDuration, cohortsSolved, nodesExplored, repairsApplied = newCollectors()
	MustRegisterMetrics(nil)
}

// MustRegisterMetrics registers engine metrics on the provided registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func MustRegisterMetrics(reg prometheus.Registerer) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(solveDuration, cohortsSolved, nodesExplored, repairsApplied)
}

// ResetMetrics reinitializes metrics collectors for testing purposes and
// registers them on the provided registry if not nil.
func ResetMetrics(reg prometheus.Registerer) {
	solveDuration, cohortsSolved, nodesExplored, repairsApplied = newCollectors()
	if reg != nil {
		MustRegisterMetrics(reg)
	}
}
