package model

import (
	"errors"
	"fmt"
	"strings"
)

// Canonical playing positions. Unknown raw values are carried through
// uppercased as their own category rather than rejected.
const (
	PositionGoalkeeper = "GK"
	PositionDefender   = "DEF"
	PositionMidfielder = "MID"
	PositionForward    = "FWD"
)

// positionAliases maps the registration form wording to canonical codes.
var positionAliases = map[string]string{
	"GOALKEEPER (GK)":                       PositionGoalkeeper,
	"GK":                                    PositionGoalkeeper,
	"DEFENDER (LEFT BACK/RIGHT BACK)":       PositionDefender,
	"CENTER BACK (CB)":                      PositionDefender,
	"MIDFIELDER (DEFENSIVE MID/CENTER MID)": PositionMidfielder,
	"WINGER (LEFT WING/RIGHT WING)":         PositionMidfielder,
	"FORWARD (STRIKER/CENTER FORWARD)":      PositionForward,
}

// NormalizePosition resolves a raw form value to a canonical position code.
// Values without an alias are returned uppercased so that rare or misspelled
// positions still form their own balancing category.
func NormalizePosition(raw string) string {
	up := strings.ToUpper(strings.TrimSpace(raw))
	if canonical, ok := positionAliases[up]; ok {
		return canonical
	}
	return up
}

// Player represents one registered athlete after ingestion and scoring.
type Player struct {
	Name       string
	Position   string // canonical code, see NormalizePosition
	SkillScore int    // non-negative, fixed before partitioning
	Cohort     string // birth-year bucket, the partitioning scope
	BirthYear  int
	Age        int

	// Placeholder marks synthetic players injected by the feasibility
	// conditioner. They participate in every constraint but must be
	// dropped from human-facing rosters.
	Placeholder bool
}

// ErrMalformedPlayer is wrapped by Validate for records that cannot enter
// the partition engine.
var ErrMalformedPlayer = errors.New("malformed player")

// Validate checks that the record carries everything the engine needs.
func (p Player) Validate() error {
	if strings.TrimSpace(p.Cohort) == "" {
		return fmt.Errorf("%w: %q has no cohort", ErrMalformedPlayer, p.Name)
	}
	if strings.TrimSpace(p.Position) == "" {
		return fmt.Errorf("%w: %q has no position", ErrMalformedPlayer, p.Name)
	}
	if p.SkillScore < 0 {
		return fmt.Errorf("%w: %q has negative skill score %d", ErrMalformedPlayer, p.Name, p.SkillScore)
	}
	return nil
}

// PositionCounts tallies players per canonical position.
func PositionCounts(players []Player) map[string]int {
	counts := make(map[string]int)
	for _, p := range players {
		counts[p.Position]++
	}
	return counts
}
