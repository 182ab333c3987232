package model

import (
	"errors"
	"testing"
)

func TestNormalizePosition(t *testing.T) {
	cases := map[string]string{
		"Goalkeeper (GK)":                       "GK",
		"gk":                                    "GK",
		"Defender (Left Back/Right Back)":       "DEF",
		"Center Back (CB)":                      "DEF",
		"Midfielder (Defensive Mid/Center Mid)": "MID",
		"Winger (Left Wing/Right Wing)":         "MID",
		"Forward (Striker/Center Forward)":      "FWD",
		"  sweeper ":                            "SWEEPER",
		"Libero":                                "LIBERO",
	}
	for raw, want := range cases {
		if got := NormalizePosition(raw); got != want {
			t.Errorf("NormalizePosition(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestPlayerValidate(t *testing.T) {
	ok := Player{Name: "a", Position: PositionDefender, Cohort: "Group_2008_2009", SkillScore: 10}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []Player{
		{Name: "no-cohort", Position: PositionDefender, SkillScore: 1},
		{Name: "no-position", Cohort: "Group_2010_Plus", SkillScore: 1},
		{Name: "negative", Position: PositionForward, Cohort: "Group_2010_Plus", SkillScore: -1},
	}
	for _, p := range bad {
		err := p.Validate()
		if err == nil {
			t.Fatalf("expected error for %s", p.Name)
		}
		if !errors.Is(err, ErrMalformedPlayer) {
			t.Fatalf("expected ErrMalformedPlayer, got %v", err)
		}
	}
}

func TestTeamLabel(t *testing.T) {
	if got := TeamLabel("Group_2010_Plus", 1); got != "Group_2010_Plus_Team_2" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestCohortResultRostersAndSkill(t *testing.T) {
	r := CohortResult{
		Cohort: "g",
		Assignments: []TeamAssignment{
			{Player: Player{Name: "a", SkillScore: 10}, Team: 0},
			{Player: Player{Name: "b", SkillScore: 20}, Team: 1},
			{Player: Player{Name: "c", SkillScore: 5}, Team: 0},
		},
	}
	rosters := r.Rosters()
	if len(rosters[0]) != 2 || len(rosters[1]) != 1 {
		t.Fatalf("unexpected rosters %v", rosters)
	}
	if r.TeamSkill(0) != 15 || r.TeamSkill(1) != 20 {
		t.Fatalf("unexpected team skills %d/%d", r.TeamSkill(0), r.TeamSkill(1))
	}
}
