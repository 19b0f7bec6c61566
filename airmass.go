package astroplan

import (
	"math"
	"time"
)

// AirmassConstraint bounds the airmass of each target, approximated as the
// secant of the zenith angle. The common case cares only about the upper
// bound ("airmass better than 2"), so the constructor takes max; min
// defaults to 1, the zenith value.
//
// With BooleanConstraint cleared, the result is a continuous score where
// low airmass is good: min scores 1, max scores 0, and anything below min
// (better than the best asked for) also scores 0 to disregard unphysical
// values. A float score requires max to be set.
type AirmassConstraint struct {
	min Limit
	max Limit

	BooleanConstraint bool
}

// NewAirmassConstraint requires airmass at or below max. min defaults to 1.
func NewAirmassConstraint(max Limit) *AirmassConstraint {
	return &AirmassConstraint{
		min:               Limit{1},
		max:               normalizeLimit(max),
		BooleanConstraint: true,
	}
}

// NewAirmassRangeConstraint bounds airmass to [min, max]; either limit may
// be nil for no bound on that side, but not both.
func NewAirmassRangeConstraint(min, max Limit) *AirmassConstraint {
	return &AirmassConstraint{
		min:               normalizeLimit(min),
		max:               normalizeLimit(max),
		BooleanConstraint: true,
	}
}

// Compute implements Constraint.
func (c *AirmassConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if err := c.min.checkShape(len(targets)); err != nil {
		return nil, err
	}
	if err := c.max.checkShape(len(targets)); err != nil {
		return nil, err
	}

	aa := observer.AltAz(times, targets)

	if c.BooleanConstraint {
		m := newBoolMatrix(len(targets), len(times))
		for i := range targets {
			for j := range times {
				secz := secantZenith(aa.Alt[i][j])
				var ok bool
				switch {
				case c.min == nil && c.max != nil:
					ok = secz <= c.max.at(i)
				case c.max == nil && c.min != nil:
					ok = c.min.at(i) <= secz
				case c.min != nil && c.max != nil:
					ok = c.min.at(i) <= secz && secz <= c.max.at(i)
				default:
					return nil, ErrNoLimits
				}
				m.setBool(i, j, ok)
			}
		}
		return m, nil
	}

	if c.max == nil {
		return nil, ErrScoreUnsupported
	}
	min := c.min
	if min == nil {
		min = Limit{1}
	}
	m := newFloatMatrix(len(targets), len(times))
	for i := range targets {
		lo, hi := min.at(i), c.max.at(i)
		for j := range times {
			// Values below min count as perfect would be wrong for
			// airmass; they are disregarded instead.
			m.set(i, j, minBestScore(secantZenith(aa.Alt[i][j]), lo, hi, 0))
		}
	}
	return m, nil
}

// secantZenith returns sec(zenith angle) for an altitude in degrees. At or
// below the horizon this grows without bound or turns negative, which the
// bound comparisons handle naturally.
func secantZenith(altDeg float64) float64 {
	return 1 / math.Sin(altDeg*math.Pi/180)
}
