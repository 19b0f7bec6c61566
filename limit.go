package astroplan

import "fmt"

// Limit holds the bound values of a constraint. nil means the bound is
// unset; one value is a scalar bound that broadcasts over any number of
// targets; N values are per-target bounds, the column form that lets a
// single vectorized constraint carry a distinct bound for each target.
type Limit []float64

// scalar reports whether the limit broadcasts against any target count.
func (l Limit) scalar() bool { return len(l) <= 1 }

// at returns the bound for target i under broadcasting rules. Call only
// after checkShape has passed and the limit is known to be set.
func (l Limit) at(i int) float64 {
	if len(l) == 1 {
		return l[0]
	}
	return l[i]
}

// checkShape verifies that a set, non-scalar limit matches the target
// count. Unset and scalar limits always pass.
func (l Limit) checkShape(numTargets int) error {
	if l == nil || l.scalar() {
		return nil
	}
	if len(l) != numTargets {
		return fmt.Errorf("%w: %d limits for %d targets", ErrLimitShape, len(l), numTargets)
	}
	return nil
}

// normalizeLimit copies user-supplied bound values so constraints never
// alias caller slices. nil stays nil.
func normalizeLimit(vals Limit) Limit {
	if vals == nil {
		return nil
	}
	out := make(Limit, len(vals))
	copy(out, vals)
	return out
}
