package astroplan

import "time"

// Constraint is a single observational constraint. Compute receives the
// normalized time sequence and target list and returns the observability
// matrix, shaped exactly (len(targets), len(times)).
//
// Constraints hold only configuration (limits and flags), never per-call
// state; the astrometric cache lives on the Observer.
type Constraint interface {
	Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error)
}

// Evaluate normalizes the caller-supplied time specification and targets,
// then delegates to the constraint's Compute. Targets are variadic: a
// single target and a slice spread with ... are both one-call cases.
func Evaluate(c Constraint, observer *Observer, spec TimeSpec, targets ...FixedTarget) (*Matrix, error) {
	times, err := spec.materialize()
	if err != nil {
		return nil, err
	}
	return c.Compute(times, observer, targets)
}
