package condition

import (
	"testing"

	"github.com/logiflow/teambalance/core/events"
	"github.com/logiflow/teambalance/core/model"
	"github.com/logiflow/teambalance/infra/logger"
	"github.com/logiflow/teambalance/internal/eventbus"
)

func cohortPlayers() []model.Player {
	players := []model.Player{
		{Name: "gk1", Position: "GK", SkillScore: 40, Cohort: "g"},
	}
	for i := 0; i < 4; i++ {
		players = append(players,
			model.Player{Name: "def", Position: "DEF", SkillScore: 20, Cohort: "g"},
			model.Player{Name: "fwd", Position: "FWD", SkillScore: 30, Cohort: "g"},
		)
	}
	return players
}

func TestRepairInjectsPlaceholderForSingleGK(t *testing.T) {
	bus := eventbus.New()
	sub := bus.Subscribe()
	c := New(Config{}, logger.NopLogger{}, bus)

	in := cohortPlayers()
	out := c.Repair("g", in)

	if len(out) != len(in)+1 {
		t.Fatalf("expected one injected player, got %d -> %d", len(in), len(out))
	}
	ghost := out[len(out)-1]
	if !ghost.Placeholder {
		t.Fatalf("injected player not flagged as placeholder")
	}
	if ghost.Position != "GK" || ghost.Cohort != "g" {
		t.Fatalf("unexpected placeholder %+v", ghost)
	}
	// Mean of a single-member category is that member's skill.
	if ghost.SkillScore != 40 {
		t.Fatalf("expected skill 40, got %d", ghost.SkillScore)
	}

	ev := <-sub
	re, ok := ev.(events.RepairEvent)
	if !ok {
		t.Fatalf("expected RepairEvent, got %T", ev)
	}
	if re.Cohort != "g" || re.Position != "GK" || re.Action != events.ActionPlaceholderInjected {
		t.Fatalf("unexpected event %+v", re)
	}
}

func TestRepairDoesNotMutateInput(t *testing.T) {
	c := New(Config{}, logger.NopLogger{}, nil)
	in := cohortPlayers()
	snapshot := len(in)
	_ = c.Repair("g", in)
	if len(in) != snapshot {
		t.Fatalf("input slice grew to %d", len(in))
	}
}

func TestRepairNoScarcity(t *testing.T) {
	c := New(Config{}, logger.NopLogger{}, nil)
	in := []model.Player{
		{Name: "a", Position: "GK", SkillScore: 1, Cohort: "g"},
		{Name: "b", Position: "GK", SkillScore: 2, Cohort: "g"},
	}
	out := c.Repair("g", in)
	if len(out) != len(in) {
		t.Fatalf("unexpected injection: %d players", len(out))
	}
}

func TestRepairAppliesToEveryScarceCategory(t *testing.T) {
	c := New(Config{}, logger.NopLogger{}, nil)
	in := []model.Player{
		{Name: "a", Position: "GK", SkillScore: 10, Cohort: "g"},
		{Name: "b", Position: "FWD", SkillScore: 20, Cohort: "g"},
		{Name: "c", Position: "DEF", SkillScore: 30, Cohort: "g"},
		{Name: "d", Position: "DEF", SkillScore: 30, Cohort: "g"},
	}
	out := c.Repair("g", in)
	if len(out) != 6 {
		t.Fatalf("expected placeholders for GK and FWD, got %d players", len(out))
	}
	// Injection order is alphabetical by position.
	if out[4].Position != "FWD" || out[5].Position != "GK" {
		t.Fatalf("unexpected injection order: %s then %s", out[4].Position, out[5].Position)
	}
}

func TestRepairRestrictedPositions(t *testing.T) {
	c := New(Config{Positions: []string{"GK"}}, logger.NopLogger{}, nil)
	in := []model.Player{
		{Name: "a", Position: "FWD", SkillScore: 20, Cohort: "g"},
		{Name: "b", Position: "DEF", SkillScore: 30, Cohort: "g"},
		{Name: "c", Position: "DEF", SkillScore: 30, Cohort: "g"},
	}
	out := c.Repair("g", in)
	if len(out) != len(in) {
		t.Fatalf("FWD scarcity must be ignored when rule is restricted to GK")
	}
}

func TestPlaceholderSkillNeutralFallback(t *testing.T) {
	c := New(Config{NeutralSkill: 42}, logger.NopLogger{}, nil)
	if got := c.placeholderSkill(nil, "GK"); got != 42 {
		t.Fatalf("expected neutral skill 42, got %d", got)
	}
}
