package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/logiflow/teambalance/core/metrics"
)

// PromSink records cohort solves in Prometheus metrics.
type PromSink struct {
	solves *prometheus.CounterVec
	diff   *prometheus.GaugeVec
}

// NewPromSink registers solve metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	solves := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "balance_solves_total",
		Help: "Total number of recorded cohort solves",
	}, []string{"cohort", "status"})
	diff := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "balance_skill_diff",
		Help: "Achieved skill differential of the latest solve per cohort",
	}, []string{"cohort"})

	if err := reg.Register(solves); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			solves = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(diff); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			diff = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{solves: solves, diff: diff}, nil
}

// RecordSolve increments the counters for each solve record.
func (s *PromSink) RecordSolve(records []coremetrics.SolveRecord) error {
	for _, r := range records {
		s.solves.WithLabelValues(r.Cohort, r.Status.String()).Inc()
		s.diff.WithLabelValues(r.Cohort).Set(float64(r.SkillDiff))
	}
	return nil
}
