package astroplan

import "time"

// Sentinel bounds substituted for unset TimeWindowConstraint limits.
var (
	earliestSentinel = time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC)
	latestSentinel   = time.Date(2120, 1, 1, 0, 0, 0, 0, time.UTC)
)

// TimeWindowConstraint bounds the absolute instant of each sample. Unlike
// the angle-based constraints, the comparison is strict: an instant equal
// to either bound is excluded.
//
// A typical use is tying an observing block to the slice of the semester
// it was allocated.
type TimeWindowConstraint struct {
	min []time.Time
	max []time.Time
}

// NewTimeWindowConstraint restricts observations to min < t < max. Either
// bound may be nil, but not both; an unset bound defaults to a far
// past/future sentinel.
func NewTimeWindowConstraint(min, max *time.Time) (*TimeWindowConstraint, error) {
	if min == nil && max == nil {
		return nil, ErrNoLimits
	}
	c := &TimeWindowConstraint{}
	if min != nil {
		c.min = []time.Time{*min}
	}
	if max != nil {
		c.max = []time.Time{*max}
	}
	return c, nil
}

func windowBoundAt(s []time.Time, i int, sentinel time.Time) time.Time {
	switch len(s) {
	case 0:
		return sentinel
	case 1:
		return s[0]
	default:
		return s[i]
	}
}

// Compute implements Constraint. The instant is a per-time quantity tiled
// explicitly across the target dimension.
func (c *TimeWindowConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if len(c.min) > 1 && len(c.min) != len(targets) {
		return nil, ErrLimitShape
	}
	if len(c.max) > 1 && len(c.max) != len(targets) {
		return nil, ErrLimitShape
	}

	m := newBoolMatrix(len(targets), len(times))
	for i := range targets {
		lo := windowBoundAt(c.min, i, earliestSentinel)
		hi := windowBoundAt(c.max, i, latestSentinel)
		for j, t := range times {
			m.setBool(i, j, t.After(lo) && t.Before(hi))
		}
	}
	return m, nil
}
