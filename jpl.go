package astroplan

import (
	"fmt"
	"math"
	"time"

	"github.com/mshafiee/jpleph"

	"github.com/astroplanners/astroplan/internal/astro"
)

// JPLEphemeris is an Ephemeris backed by a JPL development ephemeris file
// (DE405, DE430, ...). It is the "named ephemeris source" alternative to
// the built-in analytic series.
type JPLEphemeris struct {
	eph *jpleph.Ephemeris
}

// OpenJPLEphemeris opens a binary JPL ephemeris file. The caller owns the
// returned ephemeris and should Close it when done.
func OpenJPLEphemeris(path string) (*JPLEphemeris, error) {
	eph, err := jpleph.NewEphemeris(path, false)
	if err != nil {
		return nil, fmt.Errorf("open jpl ephemeris %s: %w", path, err)
	}
	return &JPLEphemeris{eph: eph}, nil
}

// Close releases the underlying ephemeris file.
func (j *JPLEphemeris) Close() error {
	return j.eph.Close()
}

// Sun returns the geocentric RA/Dec and distance of the Sun at t.
func (j *JPLEphemeris) Sun(t time.Time) (float64, float64, float64, error) {
	return j.bodyRADec(t, jpleph.Sun)
}

// Moon returns the geocentric RA/Dec and distance of the Moon at t.
func (j *JPLEphemeris) Moon(t time.Time) (float64, float64, float64, error) {
	return j.bodyRADec(t, jpleph.Moon)
}

func (j *JPLEphemeris) bodyRADec(t time.Time, body jpleph.Planet) (float64, float64, float64, error) {
	pos, _, err := j.eph.CalculatePV(astro.JulianDate(t), body, jpleph.CenterEarth, false)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("jpl ephemeris lookup: %w", err)
	}
	ra, dec, distAU := vectorToRADec(pos.X, pos.Y, pos.Z)
	return ra, dec, distAU * astro.AU, nil
}

// vectorToRADec converts an equatorial position vector to RA/Dec in degrees
// plus the vector norm.
func vectorToRADec(x, y, z float64) (raDeg, decDeg, r float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	raDeg = math.Atan2(y, x) * 180 / math.Pi
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = math.Asin(z/r) * 180 / math.Pi
	return raDeg, decDeg, r
}
