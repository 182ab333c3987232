package partition

// Config defines engine-related settings.
type Config struct {
	// NodeBudget caps the number of search nodes per cohort solve.
	// Zero means unbounded; cohorts are expected to stay in the tens of
	// players, which keeps the exact search tractable.
	NodeBudget int64 `json:"node_budget"`
	// AllowSingleton permits a cohort whose floor(N/2) is zero, i.e. a
	// single player split 1/0. When false such cohorts are rejected as
	// infeasible on the size constraint family.
	AllowSingleton bool `json:"allow_singleton"`
	// Parallel solves cohorts concurrently. Cohorts share no state, so
	// this only changes wall-clock time, never results.
	Parallel bool `json:"parallel"`
}

// SetDefaults fills unset fields. The zero value is already a valid
// configuration; the method exists for symmetry with the other sections.
func (c *Config) SetDefaults() {}
