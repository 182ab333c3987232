package events

import "github.com/logiflow/teambalance/core/model"

// ActionPlaceholderInjected identifies the only repair the conditioner
// performs today.
const ActionPlaceholderInjected = "placeholder_injected"

// RepairEvent is published when the feasibility conditioner alters a
// cohort's player list. The export layer uses it to warn organizers and
// drop the placeholder from printed rosters.
type RepairEvent struct {
	Cohort   string
	Position string
	Action   string
}

// CohortSolvedEvent is published after a cohort has been partitioned.
type CohortSolvedEvent struct {
	Cohort    string
	Status    model.SolveStatus
	SkillDiff int
	Players   int
}

// CohortFailedEvent is published when a cohort could not be partitioned.
// Failures are scoped to the cohort; the remaining cohorts still run.
type CohortFailedEvent struct {
	Cohort string
	Err    error
}
