package astroplan

import "time"

// AltitudeConstraint bounds the altitude of each target. Bounds are
// inclusive; an unset bound defaults to the corresponding pole (-90°/+90°).
//
// With BooleanConstraint cleared, the result is a continuous score where
// the max altitude is best (1) and the min altitude is worst (0).
type AltitudeConstraint struct {
	min Limit
	max Limit

	// BooleanConstraint selects 0/1 results (default) over the continuous
	// [0, 1] score.
	BooleanConstraint bool
}

// NewAltitudeConstraint bounds target altitude to [min, max] degrees. nil
// limits default to -90 and +90. A Limit of length N carries a distinct
// bound per target.
func NewAltitudeConstraint(min, max Limit) *AltitudeConstraint {
	if min == nil {
		min = Limit{-90}
	}
	if max == nil {
		max = Limit{90}
	}
	return &AltitudeConstraint{
		min:               normalizeLimit(min),
		max:               normalizeLimit(max),
		BooleanConstraint: true,
	}
}

// Compute implements Constraint.
func (c *AltitudeConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
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
			lo, hi := c.min.at(i), c.max.at(i)
			for j := range times {
				alt := aa.Alt[i][j]
				m.setBool(i, j, lo <= alt && alt <= hi)
			}
		}
		return m, nil
	}

	m := newFloatMatrix(len(targets), len(times))
	for i := range targets {
		lo, hi := c.min.at(i), c.max.at(i)
		for j := range times {
			m.set(i, j, maxBestScore(aa.Alt[i][j], lo, hi, 1))
		}
	}
	return m, nil
}
