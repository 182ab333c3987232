package partition

import (
	"fmt"

	"github.com/logiflow/teambalance/core/logger"
	"github.com/logiflow/teambalance/core/model"
)

// Solution is the raw variable assignment found by the search, aligned
// with the model's player order.
type Solution struct {
	Status    model.SolveStatus
	Teams     []int // team index per player
	SkillDiff int64
	Nodes     int64
}

// Solver runs an exact branch-and-bound search over a compiled Model.
//
// The search is deterministic: players are branched in model order, team 0
// before team 1, the first player is pinned to team 0 to break the mirror
// symmetry, and an incumbent is only replaced by a strictly smaller skill
// differential. For a fixed input ordering the result is therefore the
// lexicographically first optimum.
type Solver struct {
	cfg Config
	log logger.Logger
}

// NewSolver returns a solver with the given configuration.
func NewSolver(cfg Config, log logger.Logger) *Solver {
	cfg.SetDefaults()
	return &Solver{cfg: cfg, log: log}
}

// SolveStrict searches the feasible region for a minimum skill
// differential. It returns:
//
//   - StatusOptimal when the search space was exhausted,
//   - StatusFeasible when the node budget ran out with an incumbent,
//   - *InfeasibleError when no assignment satisfies the hard constraints,
//   - ErrResourceExhausted when the budget ran out before any incumbent.
func (s *Solver) SolveStrict(m *Model) (*Solution, error) {
	if m.Teams != 2 {
		return nil, fmt.Errorf("partition: solver supports exactly 2 teams, model has %d", m.Teams)
	}
	if len(m.Players) < 2 && !s.cfg.AllowSingleton {
		return nil, &InfeasibleError{Family: FamilySize}
	}

	st := newSearcher(m, s.cfg.NodeBudget)
	st.dfs(0)

	s.log.Debugf("search finished: %d nodes, found=%v truncated=%v", st.nodes, st.found, st.truncated)

	switch {
	case st.found && !st.truncated:
		return &Solution{Status: model.StatusOptimal, Teams: st.best, SkillDiff: st.bestDiff, Nodes: st.nodes}, nil
	case st.found:
		return &Solution{Status: model.StatusFeasible, Teams: st.best, SkillDiff: st.bestDiff, Nodes: st.nodes}, nil
	case st.truncated:
		return nil, ErrResourceExhausted
	default:
		return nil, diagnose(m)
	}
}

// diagnose names the constraint family blamed for an exhausted search with
// no solution. The floor/ceil ranges are jointly satisfiable for any
// cohort of two or more players, so an empty feasible region points at the
// scarcest category interacting with the size bounds.
func diagnose(m *Model) error {
	if pos := m.scarcestPosition(); pos != "" && len(m.Players) >= 2 {
		return &InfeasibleError{Family: FamilyPosition, Position: pos}
	}
	return &InfeasibleError{Family: FamilySize}
}

// searcher carries the depth-first search state.
type searcher struct {
	m      *Model
	budget int64

	playerPos []int // per player: index into position arrays
	posMin    []int
	posMax    []int

	// suffixPos[i][p] counts players of position p at index >= i;
	// suffixSkill[i] sums their skill. Both drive lookahead pruning.
	suffixPos   [][]int
	suffixSkill []int64

	assign    []int
	sizes     [2]int
	skills    [2]int64
	posCounts [][2]int

	best      []int
	bestDiff  int64
	found     bool
	truncated bool
	nodes     int64
}

func newSearcher(m *Model, budget int64) *searcher {
	n := len(m.Players)
	order := m.positionOrder()
	posIndex := make(map[string]int, len(order))
	st := &searcher{
		m:           m,
		budget:      budget,
		playerPos:   make([]int, n),
		posMin:      make([]int, len(order)),
		posMax:      make([]int, len(order)),
		suffixPos:   make([][]int, n+1),
		suffixSkill: make([]int64, n+1),
		assign:      make([]int, n),
		posCounts:   make([][2]int, len(order)),
		bestDiff:    m.SkillBound + 1,
	}
	for i, pos := range order {
		posIndex[pos] = i
		st.posMin[i] = m.Positions[pos].Min
		st.posMax[i] = m.Positions[pos].Max
	}
	for i, p := range m.Players {
		st.playerPos[i] = posIndex[p.Position]
	}
	st.suffixPos[n] = make([]int, len(order))
	for i := n - 1; i >= 0; i-- {
		st.suffixPos[i] = make([]int, len(order))
		copy(st.suffixPos[i], st.suffixPos[i+1])
		st.suffixPos[i][st.playerPos[i]]++
		st.suffixSkill[i] = st.suffixSkill[i+1] + int64(m.Players[i].SkillScore)
	}
	return st
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// dfs explores assignments for players[i:]. It returns false when the
// node budget is exhausted and the search must unwind.
func (st *searcher) dfs(i int) bool {
	st.nodes++
	if st.budget > 0 && st.nodes > st.budget {
		st.truncated = true
		return false
	}

	n := len(st.m.Players)
	if i == n {
		if !st.complete() {
			return true
		}
		diff := abs64(st.skills[0] - st.skills[1])
		if !st.found || diff < st.bestDiff {
			st.found = true
			st.bestDiff = diff
			st.best = append([]int(nil), st.assign...)
		}
		return true
	}

	// No completion of this prefix can beat the incumbent.
	if st.found {
		lb := abs64(st.skills[0]-st.skills[1]) - st.suffixSkill[i]
		if lb < 0 {
			lb = 0
		}
		if lb >= st.bestDiff {
			return true
		}
	}

	teams := 2
	if i == 0 {
		teams = 1 // mirror symmetry: pin the first player to team 0
	}
	p := st.playerPos[i]
	for t := 0; t < teams; t++ {
		if st.sizes[t] >= st.m.SizeMax || st.posCounts[p][t] >= st.posMax[p] {
			continue
		}
		st.sizes[t]++
		st.skills[t] += int64(st.m.Players[i].SkillScore)
		st.posCounts[p][t]++
		if st.reachable(i + 1) {
			if !st.dfs(i + 1) {
				return false
			}
		}
		st.sizes[t]--
		st.skills[t] -= int64(st.m.Players[i].SkillScore)
		st.posCounts[p][t]--
	}
	return true
}

// reachable checks that the unassigned players can still lift every team
// and category to its lower bound.
func (st *searcher) reachable(i int) bool {
	rem := len(st.m.Players) - i
	need := 0
	for t := 0; t < 2; t++ {
		if d := st.m.SizeMin - st.sizes[t]; d > 0 {
			need += d
		}
	}
	if need > rem {
		return false
	}
	for p := range st.posCounts {
		need = 0
		for t := 0; t < 2; t++ {
			if d := st.posMin[p] - st.posCounts[p][t]; d > 0 {
				need += d
			}
		}
		if need > st.suffixPos[i][p] {
			return false
		}
	}
	return true
}

// complete verifies the lower bounds on a full assignment. Upper bounds
// are enforced during descent.
func (st *searcher) complete() bool {
	for t := 0; t < 2; t++ {
		if st.sizes[t] < st.m.SizeMin || st.sizes[t] > st.m.SizeMax {
			return false
		}
	}
	for p := range st.posCounts {
		if st.posCounts[p][0] < st.posMin[p] || st.posCounts[p][1] < st.posMin[p] {
			return false
		}
	}
	return true
}
