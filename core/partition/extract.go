package partition

import (
	"fmt"

	"github.com/logiflow/teambalance/core/model"
)

// Extract maps a solved assignment back onto the cohort's players. The
// reported differential is recomputed from the rosters rather than read
// from the search so the output is self-consistent.
func Extract(cohort string, m *Model, sol *Solution) (model.CohortResult, error) {
	if sol == nil || (sol.Status != model.StatusOptimal && sol.Status != model.StatusFeasible) {
		return model.CohortResult{}, fmt.Errorf("partition: no assignment to extract for cohort %s", cohort)
	}
	if len(sol.Teams) != len(m.Players) {
		return model.CohortResult{}, fmt.Errorf("partition: assignment length %d does not match %d players", len(sol.Teams), len(m.Players))
	}

	res := model.CohortResult{
		Cohort:      cohort,
		Status:      sol.Status,
		Assignments: make([]model.TeamAssignment, len(m.Players)),
	}
	var skills [2]int64
	for i, p := range m.Players {
		t := sol.Teams[i]
		if t < 0 || t >= m.Teams {
			return model.CohortResult{}, fmt.Errorf("partition: player %q assigned to invalid team %d", p.Name, t)
		}
		res.Assignments[i] = model.TeamAssignment{
			Player:    p,
			Team:      t,
			TeamLabel: model.TeamLabel(cohort, t),
		}
		skills[t] += int64(p.SkillScore)
	}
	res.SkillDiff = int(abs64(skills[0] - skills[1]))
	return res, nil
}
