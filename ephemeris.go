package astroplan

import (
	"time"

	"github.com/astroplanners/astroplan/internal/astro"
)

// Ephemeris supplies geocentric equatorial positions for the Sun and the
// Moon. Observers use the built-in analytic series by default; a JPL
// development ephemeris can be substituted for higher precision (see
// OpenJPLEphemeris).
type Ephemeris interface {
	// Sun returns the geocentric RA/Dec of the Sun in degrees and its
	// distance in kilometers at time t.
	Sun(t time.Time) (raDeg, decDeg, distKm float64, err error)

	// Moon returns the geocentric RA/Dec of the Moon in degrees and its
	// distance in kilometers at time t.
	Moon(t time.Time) (raDeg, decDeg, distKm float64, err error)
}

// BuiltinEphemeris computes solar and lunar positions from the analytic
// series in internal/astro. It never fails.
type BuiltinEphemeris struct{}

func (BuiltinEphemeris) Sun(t time.Time) (float64, float64, float64, error) {
	ra, dec, dist := astro.SunPosition(t)
	return ra, dec, dist, nil
}

func (BuiltinEphemeris) Moon(t time.Time) (float64, float64, float64, error) {
	ra, dec, dist := astro.MoonPosition(t)
	return ra, dec, dist, nil
}
