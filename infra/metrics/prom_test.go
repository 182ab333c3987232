package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/logiflow/teambalance/core/metrics"
	"github.com/logiflow/teambalance/core/model"
)

func TestPromSinkRecordsSolves(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}

	recs := []coremetrics.SolveRecord{
		{Cohort: "g1", Status: model.StatusOptimal, SkillDiff: 3},
		{Cohort: "g1", Status: model.StatusOptimal, SkillDiff: 1},
		{Cohort: "g2", Status: model.StatusInfeasible},
	}
	if err := sink.RecordSolve(recs); err != nil {
		t.Fatalf("record: %v", err)
	}

	if got := testutil.ToFloat64(sink.solves.WithLabelValues("g1", "optimal")); got != 2 {
		t.Fatalf("expected 2 g1 solves, got %v", got)
	}
	if got := testutil.ToFloat64(sink.diff.WithLabelValues("g1")); got != 1 {
		t.Fatalf("expected latest diff 1, got %v", got)
	}
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("first: %v", err)
	}
	if _, err := NewPromSink(reg); err != nil {
		t.Fatalf("second: %v", err)
	}
}
