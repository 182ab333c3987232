package condition

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/logiflow/teambalance/core/events"
	"github.com/logiflow/teambalance/core/logger"
	"github.com/logiflow/teambalance/core/model"
	"github.com/logiflow/teambalance/internal/eventbus"
)

// Config defines conditioning policy settings.
type Config struct {
	// Positions restricts the scarcity repair to the listed categories.
	// Empty means every position category is checked.
	Positions []string `json:"positions"`
	// NeutralSkill is the placeholder skill score used when no mean can
	// be computed for the scarce category.
	NeutralSkill int `json:"neutral_skill"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.NeutralSkill == 0 {
		c.NeutralSkill = 50
	}
}

// Conditioner repairs cohorts that would deadlock the solver. The known
// failure mode is a position category with exactly one member: combined
// with strict size balance the two hard constraint families can become
// jointly unsatisfiable, so one placeholder of that category is injected.
type Conditioner struct {
	cfg Config
	log logger.Logger
	bus eventbus.EventBus
}

// New returns a Conditioner. bus may be nil when no repair notices are
// wanted.
func New(cfg Config, log logger.Logger, bus eventbus.EventBus) *Conditioner {
	cfg.SetDefaults()
	return &Conditioner{cfg: cfg, log: log, bus: bus}
}

// applies reports whether the repair rule covers the given category.
func (c *Conditioner) applies(position string) bool {
	if len(c.cfg.Positions) == 0 {
		return true
	}
	for _, p := range c.cfg.Positions {
		if model.NormalizePosition(p) == position {
			return true
		}
	}
	return false
}

// placeholderSkill is the mean skill of the category, falling back to the
// neutral constant when the mean is not computable.
func (c *Conditioner) placeholderSkill(players []model.Player, position string) int {
	var skills []float64
	for _, p := range players {
		if p.Position == position {
			skills = append(skills, float64(p.SkillScore))
		}
	}
	mean := stat.Mean(skills, nil)
	if len(skills) == 0 || math.IsNaN(mean) {
		return c.cfg.NeutralSkill
	}
	return int(math.Round(mean))
}

// Repair returns the cohort's player list with one placeholder appended
// for every covered position category holding exactly one player. The
// input slice is never mutated. A repair notice is logged and published
// for each injection.
func (c *Conditioner) Repair(cohort string, players []model.Player) []model.Player {
	counts := model.PositionCounts(players)

	scarce := make([]string, 0, len(counts))
	for pos, n := range counts {
		if n == 1 && c.applies(pos) {
			scarce = append(scarce, pos)
		}
	}
	if len(scarce) == 0 {
		return players
	}
	sort.Strings(scarce)

	out := make([]model.Player, len(players), len(players)+len(scarce))
	copy(out, players)
	for _, pos := range scarce {
		ghost := model.Player{
			Name:        fmt.Sprintf("PLACEHOLDER_%s", pos),
			Position:    pos,
			SkillScore:  c.placeholderSkill(players, pos),
			Cohort:      cohort,
			Placeholder: true,
		}
		out = append(out, ghost)
		c.log.Warnf("cohort %s has a single %s, injecting placeholder (skill %d)", cohort, pos, ghost.SkillScore)
		if c.bus != nil {
			c.bus.Publish(events.RepairEvent{
				Cohort:   cohort,
				Position: pos,
				Action:   events.ActionPlaceholderInjected,
			})
		}
	}
	return out
}
