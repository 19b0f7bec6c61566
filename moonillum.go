package astroplan

import "time"

// MoonIlluminationConstraint bounds the fractional illumination of the
// Moon. The constraint is also satisfied whenever the Moon is below the
// horizon, with one exception: a set minimum demands a moon that is
// actually up and at least that bright.
//
// Bound presence is tracked explicitly (nil = unset) rather than inferred
// from sentinel magnitudes, so a user-supplied bound can never select the
// wrong branch.
type MoonIlluminationConstraint struct {
	min Limit
	max Limit
}

// NewMoonIlluminationConstraint bounds the illuminated fraction to
// [min, max]; either limit may be nil for no bound on that side, but at
// least one must be set by evaluation time.
func NewMoonIlluminationConstraint(min, max Limit) *MoonIlluminationConstraint {
	return &MoonIlluminationConstraint{
		min: normalizeLimit(min),
		max: normalizeLimit(max),
	}
}

// MoonDark requires a moon no more than 25% illuminated (or down).
func MoonDark() *MoonIlluminationConstraint {
	return NewMoonIlluminationConstraint(nil, Limit{0.25})
}

// MoonGrey requires an illuminated fraction between 25% and 65%.
func MoonGrey() *MoonIlluminationConstraint {
	return NewMoonIlluminationConstraint(Limit{0.25}, Limit{0.65})
}

// MoonBright requires a moon at least 65% illuminated.
func MoonBright() *MoonIlluminationConstraint {
	return NewMoonIlluminationConstraint(Limit{0.65}, nil)
}

// Compute implements Constraint. Illumination and lunar altitude are
// per-time quantities tiled explicitly across the target dimension.
func (c *MoonIlluminationConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if c.min == nil && c.max == nil {
		return nil, ErrNoLimits
	}
	if err := c.min.checkShape(len(targets)); err != nil {
		return nil, err
	}
	if err := c.max.checkShape(len(targets)); err != nil {
		return nil, err
	}

	md, err := observer.MoonData(times)
	if err != nil {
		return nil, err
	}

	m := newBoolMatrix(len(targets), len(times))
	for i := range targets {
		for j := range times {
			illum := md.Illum[j]
			moonDown := md.Alt[j] < 0
			var ok bool
			switch {
			case c.min == nil:
				ok = illum <= c.max.at(i) || moonDown
			case c.max == nil:
				ok = c.min.at(i) <= illum && !moonDown
			default:
				ok = c.min.at(i) <= illum && illum <= c.max.at(i) && !moonDown
			}
			m.setBool(i, j, ok)
		}
	}
	return m, nil
}
