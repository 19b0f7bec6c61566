package astroplan

import (
	"errors"
	"math"
	"time"

	"github.com/astroplanners/astroplan/internal/astro"
)

// testPoleObserver sits at the north pole with refraction disabled, where
// the altitude of any target equals its declination. That makes expected
// constraint results exact without reproducing the full transformation in
// the tests.
func testPoleObserver() *Observer {
	o := NewObserver("North Pole", 90, 0)
	o.Pressure = 0
	return o
}

// testGoldstoneObserver is a real mid-latitude site for tests that want
// the actual sky.
func testGoldstoneObserver() *Observer {
	return NewObserver("Goldstone", 35.4267, -116.89)
}

var testNight = []time.Time{
	time.Date(2024, 7, 15, 5, 0, 0, 0, time.UTC),
	time.Date(2024, 7, 15, 7, 0, 0, 0, time.UTC),
	time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC),
}

var errTestEphemeris = errors.New("test ephemeris failure")

// fakeEphemeris pins the Sun and Moon to fixed geocentric coordinates and
// counts position queries, for cache and branch-selection tests.
type fakeEphemeris struct {
	sunRA, sunDec   float64
	moonRA, moonDec float64
	moonDist        float64

	sunCalls  int
	moonCalls int
	err       error
}

func (f *fakeEphemeris) Sun(t time.Time) (float64, float64, float64, error) {
	f.sunCalls++
	if f.err != nil {
		return 0, 0, 0, f.err
	}
	return f.sunRA, f.sunDec, astro.AU, nil
}

func (f *fakeEphemeris) Moon(t time.Time) (float64, float64, float64, error) {
	f.moonCalls++
	if f.err != nil {
		return 0, 0, 0, f.err
	}
	dist := f.moonDist
	if dist == 0 {
		dist = 384400
	}
	return f.moonRA, f.moonDec, dist, nil
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func boolRow(m *Matrix, i int) []bool {
	out := make([]bool, m.NumTimes())
	for j := range out {
		out[j] = m.BoolAt(i, j)
	}
	return out
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
