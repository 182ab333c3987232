package partition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/logiflow/teambalance/core/condition"
	"github.com/logiflow/teambalance/core/events"
	"github.com/logiflow/teambalance/core/logger"
	"github.com/logiflow/teambalance/core/metrics"
	"github.com/logiflow/teambalance/core/model"
	"github.com/logiflow/teambalance/internal/eventbus"
)

// Result aggregates the per-cohort outcomes of one run. Failures never
// abort the run; a cohort is either in Cohorts or in Failures.
type Result struct {
	RunID     string
	Cohorts   []model.CohortResult
	Failures  map[string]error
	Malformed []error
}

// Orchestrator partitions the full player set by cohort and solves each
// cohort independently. Cohorts share no variables or constraints, so
// they may run in parallel without affecting results.
type Orchestrator struct {
	conditioner *condition.Conditioner
	solver      *Solver
	parallel    bool
	log         logger.Logger
	bus         eventbus.EventBus
	sink        metrics.SolveSink
}

// NewOrchestrator creates a new orchestrator. bus may be nil; sink
// defaults to a NopSink.
func NewOrchestrator(cond *condition.Conditioner, solver *Solver, parallel bool, sink metrics.SolveSink, bus eventbus.EventBus, log logger.Logger) (*Orchestrator, error) {
	if cond == nil || solver == nil || log == nil {
		return nil, fmt.Errorf("partition: nil parameter provided to NewOrchestrator")
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Orchestrator{
		conditioner: cond,
		solver:      solver,
		parallel:    parallel,
		log:         log,
		bus:         bus,
		sink:        sink,
	}, nil
}

// Run validates, groups and solves the players. Malformed records are
// reported and skipped without affecting their cohort's remaining players.
func (o *Orchestrator) Run(ctx context.Context, players []model.Player) Result {
	res := Result{
		RunID:    uuid.New().String(),
		Failures: make(map[string]error),
	}

	byCohort := make(map[string][]model.Player)
	for _, p := range players {
		if err := p.Validate(); err != nil {
			res.Malformed = append(res.Malformed, err)
			continue
		}
		byCohort[p.Cohort] = append(byCohort[p.Cohort], p)
	}
	if len(res.Malformed) > 0 {
		o.log.Warnf("run %s: %d malformed players skipped", res.RunID, len(res.Malformed))
	}

	cohorts := make([]string, 0, len(byCohort))
	for name := range byCohort {
		cohorts = append(cohorts, name)
	}
	sort.Strings(cohorts)
	o.log.Infof("run %s: solving %d cohorts", res.RunID, len(cohorts))

	var mu sync.Mutex
	collect := func(name string, cr model.CohortResult, rec *metrics.SolveRecord, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			res.Failures[name] = err
		} else {
			res.Cohorts = append(res.Cohorts, cr)
		}
		if rec != nil {
			rec.RunID = res.RunID
			if serr := o.sink.RecordSolve([]metrics.SolveRecord{*rec}); serr != nil {
				o.log.Errorf("metrics error: %v", serr)
			}
		}
	}

	if o.parallel {
		var wg sync.WaitGroup
		for _, name := range cohorts {
			wg.Add(1)
			go func(name string) {
				defer wg.Done()
				cr, rec, err := o.solveCohort(ctx, name, byCohort[name])
				collect(name, cr, rec, err)
			}(name)
		}
		wg.Wait()
	} else {
		for _, name := range cohorts {
			cr, rec, err := o.solveCohort(ctx, name, byCohort[name])
			collect(name, cr, rec, err)
		}
	}

	sort.Slice(res.Cohorts, func(i, j int) bool { return res.Cohorts[i].Cohort < res.Cohorts[j].Cohort })
	return res
}

// solveCohort runs condition -> build -> solve -> extract for one cohort.
func (o *Orchestrator) solveCohort(ctx context.Context, name string, players []model.Player) (model.CohortResult, *metrics.SolveRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.CohortResult{}, nil, fmt.Errorf("cohort %s: %w", name, err)
	}
	start := time.Now()

	conditioned := o.conditioner.Repair(name, players)
	injected := len(conditioned) - len(players)
	if injected > 0 {
		repairsApplied.Add(float64(injected))
	}

	m, err := Build(conditioned, 2)
	if err != nil {
		o.fail(name, err)
		return model.CohortResult{}, nil, fmt.Errorf("cohort %s: %w", name, err)
	}

	sol, err := o.solver.SolveStrict(m)
	dur := time.Since(start)
	if err != nil {
		o.observe(statusLabel(err), dur, 0)
		o.fail(name, err)
		rec := o.record(name, model.StatusInfeasible, 0, m, injected, 0, dur)
		var inf *InfeasibleError
		if !errors.As(err, &inf) {
			rec = nil // solver error, not a solve outcome
		}
		return model.CohortResult{}, rec, fmt.Errorf("cohort %s: %w", name, err)
	}

	cr, err := Extract(name, m, sol)
	if err != nil {
		o.observe("error", dur, sol.Nodes)
		o.fail(name, err)
		return model.CohortResult{}, nil, fmt.Errorf("cohort %s: %w", name, err)
	}

	o.observe(cr.Status.String(), dur, sol.Nodes)
	o.log.Infof("cohort %s: %s split of %d players, skill diff %d (%d nodes)",
		name, cr.Status, len(conditioned), cr.SkillDiff, sol.Nodes)
	if o.bus != nil {
		o.bus.Publish(events.CohortSolvedEvent{
			Cohort:    name,
			Status:    cr.Status,
			SkillDiff: cr.SkillDiff,
			Players:   len(conditioned),
		})
	}
	return cr, o.record(name, cr.Status, cr.SkillDiff, m, injected, sol.Nodes, dur), nil
}

func (o *Orchestrator) fail(name string, err error) {
	o.log.Errorf("cohort %s failed: %v", name, err)
	if o.bus != nil {
		o.bus.Publish(events.CohortFailedEvent{Cohort: name, Err: err})
	}
}

func (o *Orchestrator) observe(status string, dur time.Duration, nodes int64) {
	cohortsSolved.WithLabelValues(status).Inc()
	solveDuration.WithLabelValues(status).Observe(dur.Seconds())
	if nodes > 0 {
		nodesExplored.Observe(float64(nodes))
	}
}

func (o *Orchestrator) record(name string, status model.SolveStatus, diff int, m *Model, injected int, nodes int64, dur time.Duration) *metrics.SolveRecord {
	return &metrics.SolveRecord{
		Cohort:       name,
		Status:       status,
		SkillDiff:    diff,
		Players:      len(m.Players),
		Placeholders: injected,
		Nodes:        nodes,
		Duration:     dur,
		SolvedAt:     time.Now(),
	}
}

// statusLabel maps a solve error onto the metrics status label.
func statusLabel(err error) string {
	var inf *InfeasibleError
	switch {
	case errors.As(err, &inf):
		return model.StatusInfeasible.String()
	case errors.Is(err, ErrResourceExhausted):
		return "budget_exhausted"
	default:
		return "error"
	}
}
