package partition

import (
	"fmt"
	"sort"

	"github.com/logiflow/teambalance/core/model"
)

// PositionBounds is the allowed per-team count range for one category.
type PositionBounds struct {
	Count int // players of this category in the cohort
	Min   int // floor(Count / Teams)
	Max   int // ceil(Count / Teams)
}

// Model is the compiled constraint model for one cohort. It ranges over
// len(Players) x Teams boolean assignment variables x[p,t] with:
//
//   - exactly one team per player,
//   - per-team size within [SizeMin, SizeMax],
//   - per-category counts within the category's PositionBounds,
//   - objective |score(0) - score(1)| bounded by SkillBound.
//
// Sizes and category counts are ranges rather than equalities: odd totals
// make exact 50/50 splits impossible, and the floor/ceil range is the
// tightest form that integer arithmetic always admits.
type Model struct {
	Teams     int
	Players   []model.Player
	SizeMin   int
	SizeMax   int
	Positions map[string]PositionBounds
	// SkillBound is the objective's declared upper bound: the summed
	// skill of the whole cohort. Accumulated in int64 so large cohorts
	// cannot silently overflow the objective.
	SkillBound int64
}

// Build compiles a conditioned player list into a Model. Variable order
// follows input order, which fixes the solver's branching order and makes
// results reproducible for a given input.
func Build(players []model.Player, teams int) (*Model, error) {
	if teams < 2 {
		return nil, fmt.Errorf("partition: need at least 2 teams, got %d", teams)
	}
	for _, p := range players {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	n := len(players)
	m := &Model{
		Teams:     teams,
		Players:   players,
		SizeMin:   n / teams,
		SizeMax:   n/teams + 1,
		Positions: make(map[string]PositionBounds),
	}
	for pos, count := range model.PositionCounts(players) {
		m.Positions[pos] = PositionBounds{
			Count: count,
			Min:   count / teams,
			Max:   (count + teams - 1) / teams,
		}
	}
	for _, p := range players {
		m.SkillBound += int64(p.SkillScore)
	}
	return m, nil
}

// positionOrder returns the category names in a fixed order so iteration
// during the search is deterministic.
func (m *Model) positionOrder() []string {
	names := make([]string, 0, len(m.Positions))
	for pos := range m.Positions {
		names = append(names, pos)
	}
	sort.Strings(names)
	return names
}

// scarcestPosition returns the category with the fewest players, ties
// broken alphabetically. Used for infeasibility diagnostics.
func (m *Model) scarcestPosition() string {
	best := ""
	bestCount := -1
	for _, pos := range m.positionOrder() {
		if c := m.Positions[pos].Count; bestCount == -1 || c < bestCount {
			best, bestCount = pos, c
		}
	}
	return best
}
