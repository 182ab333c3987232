package model

import "fmt"

// SolveStatus reports how the solver terminated for one cohort.
type SolveStatus int

const (
	// StatusInfeasible means no assignment satisfies the hard constraints.
	StatusInfeasible SolveStatus = iota
	// StatusFeasible means a satisfying assignment was found but the
	// search budget ran out before optimality was proven.
	StatusFeasible
	// StatusOptimal means the search completed and the returned
	// assignment minimizes the skill differential.
	StatusOptimal
)

func (s SolveStatus) String() string {
	switch s {
	case StatusInfeasible:
		return "infeasible"
	case StatusFeasible:
		return "feasible"
	case StatusOptimal:
		return "optimal"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// TeamLabel builds the unique cross-cohort label for a team index.
func TeamLabel(cohort string, team int) string {
	return fmt.Sprintf("%s_Team_%d", cohort, team+1)
}

// TeamAssignment binds one player to the team it was allocated to.
type TeamAssignment struct {
	Player    Player
	Team      int    // 0-based team index
	TeamLabel string // "<cohort>_Team_<team+1>"
}

// CohortResult is the engine's output for a single cohort.
type CohortResult struct {
	Cohort      string
	Status      SolveStatus
	Assignments []TeamAssignment
	// SkillDiff is the achieved |score(team0) - score(team1)|, including
	// any placeholder's contribution.
	SkillDiff int
}

// Rosters splits the assignments per team index.
func (r CohortResult) Rosters() map[int][]Player {
	rosters := make(map[int][]Player)
	for _, a := range r.Assignments {
		rosters[a.Team] = append(rosters[a.Team], a.Player)
	}
	return rosters
}

// TeamSkill sums the skill scores assigned to the given team.
func (r CohortResult) TeamSkill(team int) int {
	var sum int
	for _, a := range r.Assignments {
		if a.Team == team {
			sum += a.Player.SkillScore
		}
	}
	return sum
}
