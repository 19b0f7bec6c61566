package astroplan

import (
	"strconv"
	"time"
)

// DefaultGridResolution is the grid spacing used when a time range is given
// without an explicit resolution.
const DefaultGridResolution = 30 * time.Minute

// TimeSpec selects the instants a constraint is evaluated at: either an
// explicit ordered sequence of instants, or a (start, end) range that is
// materialized into a regular grid at the given resolution.
type TimeSpec struct {
	Times      []time.Time   // explicit instants; takes precedence when non-empty
	Start, End time.Time     // inclusive range bounds
	Resolution time.Duration // grid spacing; DefaultGridResolution when zero
}

// AtTimes builds a TimeSpec from explicit instants. A single instant is the
// one-sample case.
func AtTimes(times ...time.Time) TimeSpec {
	return TimeSpec{Times: times}
}

// OverRange builds a TimeSpec that samples [start, end] every step.
func OverRange(start, end time.Time, step time.Duration) TimeSpec {
	return TimeSpec{Start: start, End: end, Resolution: step}
}

// materialize resolves the spec into the concrete time sequence.
func (ts TimeSpec) materialize() ([]time.Time, error) {
	if len(ts.Times) > 0 {
		return ts.Times, nil
	}
	if ts.Start.IsZero() || ts.End.IsZero() {
		return nil, ErrNoTimes
	}
	res := ts.Resolution
	if res <= 0 {
		res = DefaultGridResolution
	}
	return TimeGridFromRange(ts.Start, ts.End, res), nil
}

// TimeGridFromRange returns instants evenly spaced by resolution from start
// up to and including end when it falls on the grid. The grid always
// contains at least the start instant.
func TimeGridFromRange(start, end time.Time, resolution time.Duration) []time.Time {
	if resolution <= 0 {
		resolution = DefaultGridResolution
	}
	var grid []time.Time
	for t := start; !t.After(end); t = t.Add(resolution) {
		grid = append(grid, t)
	}
	if len(grid) == 0 {
		grid = append(grid, start)
	}
	return grid
}

// timesKey returns the structural identity of a time sequence for caching:
// the exact value sequence, no tolerance.
func timesKey(times []time.Time) string {
	b := make([]byte, 0, len(times)*20)
	for _, t := range times {
		b = strconv.AppendInt(b, t.UnixNano(), 10)
		b = append(b, ';')
	}
	return string(b)
}
