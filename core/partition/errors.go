package partition

import (
	"errors"
	"fmt"
)

// ConstraintFamily names the group of hard constraints blamed for an
// infeasible cohort.
type ConstraintFamily string

const (
	// FamilySize covers the equal-team-size constraints.
	FamilySize ConstraintFamily = "size"
	// FamilyPosition covers the per-category balance constraints.
	FamilyPosition ConstraintFamily = "position"
)

// InfeasibleError reports that no assignment satisfies the hard
// constraints. Position is set when Family is FamilyPosition.
type InfeasibleError struct {
	Family   ConstraintFamily
	Position string
}

func (e *InfeasibleError) Error() string {
	if e.Family == FamilyPosition {
		return fmt.Sprintf("no feasible partition: %s constraint on %s cannot be satisfied", e.Family, e.Position)
	}
	return fmt.Sprintf("no feasible partition: %s constraints cannot be satisfied", e.Family)
}

// ErrResourceExhausted is returned when the node budget ran out before any
// feasible assignment was found. It is distinct from infeasibility: the
// search proved nothing.
var ErrResourceExhausted = errors.New("partition: search budget exhausted without a feasible assignment")
