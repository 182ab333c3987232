package metrics

import (
	"time"

	"github.com/logiflow/teambalance/core/model"
)

// SolveRecord represents one cohort solve to be recorded for
// observability purposes.
type SolveRecord struct {
	RunID        string
	Cohort       string
	Status       model.SolveStatus
	SkillDiff    int
	Players      int
	Placeholders int
	Nodes        int64
	Duration     time.Duration
	SolvedAt     time.Time
}

// SolveSink records cohort solve results.
type SolveSink interface {
	RecordSolve(records []SolveRecord) error
}

// NopSink discards every record.
type NopSink struct{}

// RecordSolve implements SolveSink.
func (NopSink) RecordSolve([]SolveRecord) error { return nil }

// MultiSink fans records out to several sinks, returning the first error.
type MultiSink struct {
	sinks []SolveSink
}

// NewMultiSink combines the given sinks into one.
func NewMultiSink(sinks ...SolveSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// RecordSolve implements SolveSink.
func (m *MultiSink) RecordSolve(records []SolveRecord) error {
	for _, s := range m.sinks {
		if err := s.RecordSolve(records); err != nil {
			return err
		}
	}
	return nil
}
