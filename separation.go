package astroplan

import (
	"time"

	"github.com/astroplanners/astroplan/internal/astro"
)

// SunSeparationConstraint bounds the angular separation between the Sun
// and each target. Bounds are inclusive; unset bounds default to the
// permissive [0°, 180°].
type SunSeparationConstraint struct {
	min Limit
	max Limit
}

// NewSunSeparationConstraint bounds Sun-target separation to [min, max]
// degrees; nil limits default to 0 and 180.
func NewSunSeparationConstraint(min, max Limit) *SunSeparationConstraint {
	if min == nil {
		min = Limit{0}
	}
	if max == nil {
		max = Limit{180}
	}
	return &SunSeparationConstraint{
		min: normalizeLimit(min),
		max: normalizeLimit(max),
	}
}

// Compute implements Constraint. Separations are taken between horizontal
// coordinates, so both bodies are expressed in the observer's frame first.
func (c *SunSeparationConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if err := c.min.checkShape(len(targets)); err != nil {
		return nil, err
	}
	if err := c.max.checkShape(len(targets)); err != nil {
		return nil, err
	}

	sun, err := observer.SunAltAz(times)
	if err != nil {
		return nil, err
	}
	aa := observer.AltAz(times, targets)

	return separationMatrix(sun, aa, c.min, c.max, len(targets), len(times)), nil
}

// MoonSeparationConstraint bounds the angular separation between the Moon
// and each target. Bounds are inclusive; unset bounds default to [0°, 180°].
// An optional Ephemeris overrides the observer's lunar position source for
// this constraint only.
type MoonSeparationConstraint struct {
	min Limit
	max Limit

	// Ephemeris, when non-nil, supplies the lunar position instead of the
	// observer's configured source.
	Ephemeris Ephemeris
}

// NewMoonSeparationConstraint bounds Moon-target separation to [min, max]
// degrees; nil limits default to 0 and 180.
func NewMoonSeparationConstraint(min, max Limit) *MoonSeparationConstraint {
	if min == nil {
		min = Limit{0}
	}
	if max == nil {
		max = Limit{180}
	}
	return &MoonSeparationConstraint{
		min: normalizeLimit(min),
		max: normalizeLimit(max),
	}
}

// Compute implements Constraint. The Moon's topocentric position and the
// targets are both re-expressed in the observer's horizontal frame before
// the separation is taken; doing the subtraction in a geocentric frame
// instead would miss the lunar parallax, which can exceed a degree.
func (c *MoonSeparationConstraint) Compute(times []time.Time, observer *Observer, targets []FixedTarget) (*Matrix, error) {
	if err := c.min.checkShape(len(targets)); err != nil {
		return nil, err
	}
	if err := c.max.checkShape(len(targets)); err != nil {
		return nil, err
	}

	moon, err := observer.MoonAltAz(times, c.Ephemeris)
	if err != nil {
		return nil, err
	}
	aa := observer.AltAz(times, targets)

	return separationMatrix(moon, aa, c.min, c.max, len(targets), len(times)), nil
}

func separationMatrix(body []astro.HorizontalCoord, aa *AltAzSeries, min, max Limit, numTargets, numTimes int) *Matrix {
	m := newBoolMatrix(numTargets, numTimes)
	for i := 0; i < numTargets; i++ {
		lo, hi := min.at(i), max.at(i)
		for j := 0; j < numTimes; j++ {
			sep := astro.AngularSeparation(body[j].AzDeg, body[j].ElDeg, aa.Az[i][j], aa.Alt[i][j])
			m.setBool(i, j, lo <= sep && sep <= hi)
		}
	}
	return m
}
