package astroplan

import (
	"sort"
	"time"
)

// applyConstraints evaluates every constraint over the same normalized
// times and targets and AND-reduces the matrices elementwise. All results
// must share the (targets × times) shape.
func applyConstraints(constraints []Constraint, observer *Observer, times []time.Time, targets []FixedTarget) (*Matrix, error) {
	if len(constraints) == 0 {
		return nil, ErrNoLimits
	}
	var combined *Matrix
	for _, c := range constraints {
		m, err := c.Compute(times, observer, targets)
		if err != nil {
			return nil, err
		}
		if combined == nil {
			combined = m
			continue
		}
		if err := combined.and(m); err != nil {
			return nil, err
		}
	}
	return combined, nil
}

// IsObservable reports, per target, whether the target satisfies all
// constraints at any sampled instant.
func IsObservable(constraints []Constraint, observer *Observer, spec TimeSpec, targets ...FixedTarget) ([]bool, error) {
	times, err := spec.materialize()
	if err != nil {
		return nil, err
	}
	m, err := applyConstraints(constraints, observer, times, targets)
	if err != nil {
		return nil, err
	}
	return m.anyPerTarget(), nil
}

// IsAlwaysObservable reports, per target, whether the target satisfies all
// constraints at every sampled instant.
func IsAlwaysObservable(constraints []Constraint, observer *Observer, spec TimeSpec, targets ...FixedTarget) ([]bool, error) {
	times, err := spec.materialize()
	if err != nil {
		return nil, err
	}
	m, err := applyConstraints(constraints, observer, times, targets)
	if err != nil {
		return nil, err
	}
	return m.allPerTarget(), nil
}

// monthsObservableYear is the fixed calendar year sampled by
// MonthsObservable, chosen so Earth-orientation data never needs forward
// extrapolation.
const monthsObservableYear = 2014

// MonthsObservable returns, per target, the sorted calendar months in
// which the target is observable at some sampled instant. Sampling covers
// one full fixed calendar year at the given resolution
// (DefaultGridResolution when zero).
func MonthsObservable(constraints []Constraint, observer *Observer, resolution time.Duration, targets ...FixedTarget) ([][]time.Month, error) {
	start := time.Date(monthsObservableYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(monthsObservableYear, 12, 31, 0, 0, 0, 0, time.UTC)
	times := TimeGridFromRange(start, end, resolution)

	m, err := applyConstraints(constraints, observer, times, targets)
	if err != nil {
		return nil, err
	}

	out := make([][]time.Month, len(targets))
	for i := range targets {
		seen := make(map[time.Month]bool)
		for j, t := range times {
			if m.BoolAt(i, j) {
				seen[t.Month()] = true
			}
		}
		months := make([]time.Month, 0, len(seen))
		for mo := range seen {
			months = append(months, mo)
		}
		sort.Slice(months, func(a, b int) bool { return months[a] < months[b] })
		out[i] = months
	}
	return out, nil
}
