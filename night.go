package astroplan

import "time"

// AtNightConstraint requires the Sun to be at or below a maximum solar
// altitude. The solar altitude is computed with the observer's pressure
// forced to zero by default, since refraction corrections return nonsense
// values once the Sun is below the horizon.
type AtNightConstraint struct {
	maxSolarAltitude Limit

	// ForcePressureZero suppresses refraction for the solar altitude
	// computation. On by default.
	ForcePressureZero bool
}

// NewAtNightConstraint treats "night" as solar altitude at or below
// maxSolarAltitude degrees. nil defaults to 0° (sunset to sunrise).
func NewAtNightConstraint(maxSolarAltitude Limit) *AtNightConstraint {
	if maxSolarAltitude == nil {
		maxSolarAltitude = Limit{0}
	}
	return &AtNightConstraint{
		maxSolarAltitude:  normalizeLimit(maxSolarAltitude),
		ForcePressureZero: true,
	}
}

// AtNightCivil treats nighttime as between civil twilights (-6°).
func AtNightCivil() *AtNightConstraint { return NewAtNightConstraint(Limit{-6}) }

// AtNightNautical treats nighttime as between nautical twilights (-12°).
func AtNightNautical() *AtNightConstraint { return NewAtNightConstraint(Limit{-12}) }

// AtNightAstronomical treats nighttime as between astronomical twilights (-18°).
func AtNightAstronomical() *AtNightConstraint { return NewAtNightConstraint(Limit{-18}) }

// Compute implements Constraint. The solar altitude is a per-time quantity;
// the row is tiled explicitly across the target dimension so the result
// keeps the universal (targets × times) shape.
func (c *AtNightConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if err := c.maxSolarAltitude.checkShape(len(targets)); err != nil {
		return nil, err
	}

	alts, err := observer.SunAltitude(times, c.ForcePressureZero)
	if err != nil {
		return nil, err
	}

	m := newBoolMatrix(len(targets), len(times))
	for i := range targets {
		hi := c.maxSolarAltitude.at(i)
		for j := range times {
			m.setBool(i, j, alts[j] <= hi)
		}
	}
	return m, nil
}
