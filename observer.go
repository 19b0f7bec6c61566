package astroplan

import (
	"time"

	"github.com/astroplanners/astroplan/internal/astro"
)

// StandardPressure is the default atmospheric pressure in hPa used for
// refraction. Set an observer's Pressure to zero to disable refraction
// entirely.
const StandardPressure = 1010.0

// Observer is a fixed ground-based observing location. It owns the
// astrometric cache for derived quantities; the cache is the only mutable
// state, so a single Observer must not be evaluated against from multiple
// goroutines without external serialization.
type Observer struct {
	Name      string
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	Elevation float64 // meters above sea level
	Pressure  float64 // hPa; scales the refraction correction
	Timezone  *time.Location

	eph   Ephemeris
	cache *skyCache
}

// NewObserver builds an observer at the given site with standard pressure,
// UTC local time, and the built-in solar/lunar ephemeris.
func NewObserver(name string, latDeg, lonDeg float64) *Observer {
	return &Observer{
		Name:      name,
		Latitude:  latDeg,
		Longitude: lonDeg,
		Pressure:  StandardPressure,
		Timezone:  time.UTC,
		cache:     newSkyCache(),
	}
}

// SetEphemeris switches the solar/lunar position source, e.g. to a
// JPLEphemeris. A nil value restores the built-in series.
func (o *Observer) SetEphemeris(e Ephemeris) { o.eph = e }

func (o *Observer) ephemeris() Ephemeris {
	if o.eph != nil {
		return o.eph
	}
	return BuiltinEphemeris{}
}

// altAzOf converts one RA/Dec to the observer's horizontal frame at t,
// applying refraction at the observer's current pressure.
func (o *Observer) altAzOf(raDeg, decDeg float64, t time.Time) astro.HorizontalCoord {
	hc := astro.EquatorialToHorizontal(raDeg, decDeg, o.Latitude, o.Longitude, t)
	hc.ElDeg += astro.Refraction(hc.ElDeg, o.Pressure)
	return hc
}

// AltAz returns the horizontal coordinates of each target at each time,
// computed at most once per distinct (times, targets) pair for the life of
// the observer.
func (o *Observer) AltAz(times []time.Time, targets []FixedTarget) *AltAzSeries {
	key := timesKey(times) + "#" + targetsKey(targets)
	if got, ok := o.cache.altaz[key]; ok {
		return got
	}

	s := &AltAzSeries{
		Alt: make([][]float64, len(targets)),
		Az:  make([][]float64, len(targets)),
	}
	for i, tgt := range targets {
		s.Alt[i] = make([]float64, len(times))
		s.Az[i] = make([]float64, len(times))
		for j, t := range times {
			hc := o.altAzOf(tgt.RAdeg, tgt.DecDeg, t)
			s.Alt[i][j] = hc.ElDeg
			s.Az[i][j] = hc.AzDeg
		}
	}
	o.cache.altaz[key] = s
	return s
}

// SunAltitude returns the solar altitude in degrees at each time. When
// zeroPressure is set, refraction is suppressed by overriding the
// observer's pressure for the duration of the computation; the override is
// always restored, whatever happens inside.
func (o *Observer) SunAltitude(times []time.Time, zeroPressure bool) ([]float64, error) {
	key := timesKey(times) + "#@sun"
	if got, ok := o.cache.sunAlt[key]; ok {
		return got, nil
	}

	var alts []float64
	compute := func() error {
		alts = make([]float64, len(times))
		for j, t := range times {
			ra, dec, _, err := o.ephemeris().Sun(t)
			if err != nil {
				return err
			}
			alts[j] = o.altAzOf(ra, dec, t).ElDeg
		}
		return nil
	}

	var err error
	if zeroPressure {
		err = o.withZeroPressure(compute)
	} else {
		err = compute()
	}
	if err != nil {
		return nil, err
	}
	o.cache.sunAlt[key] = alts
	return alts, nil
}

// SunAltAz returns the horizontal coordinates of the Sun at each time,
// uncached (separation constraints recompute per call, as the cache is
// keyed for target sets, not the Sun).
func (o *Observer) SunAltAz(times []time.Time) ([]astro.HorizontalCoord, error) {
	return o.bodyAltAz(times, o.ephemeris().Sun, false)
}

// MoonData returns the topocentric lunar altitude/azimuth and illuminated
// fraction at each time, computed at most once per distinct time sequence.
func (o *Observer) MoonData(times []time.Time) (*moonSeries, error) {
	key := timesKey(times)
	if got, ok := o.cache.moon[key]; ok {
		return got, nil
	}

	s := &moonSeries{
		Alt:   make([]float64, len(times)),
		Az:    make([]float64, len(times)),
		Illum: make([]float64, len(times)),
	}
	eph := o.ephemeris()
	for j, t := range times {
		mra, mdec, mdist, err := eph.Moon(t)
		if err != nil {
			return nil, err
		}
		sra, sdec, sdist, err := eph.Sun(t)
		if err != nil {
			return nil, err
		}
		hc := o.altAzOf(mra, mdec, t)
		hc.ElDeg -= astro.ParallaxInAltitude(hc.ElDeg, mdist)
		s.Alt[j] = hc.ElDeg
		s.Az[j] = hc.AzDeg
		s.Illum[j] = astro.IlluminatedFraction(sra, sdec, sdist, mra, mdec, mdist)
	}
	o.cache.moon[key] = s
	return s, nil
}

// MoonAltAz returns topocentric lunar horizontal coordinates at each time,
// uncached, using the supplied ephemeris when non-nil. Separation
// constraints use this so a per-constraint ephemeris override works.
func (o *Observer) MoonAltAz(times []time.Time, eph Ephemeris) ([]astro.HorizontalCoord, error) {
	if eph == nil {
		eph = o.ephemeris()
	}
	return o.bodyAltAz(times, eph.Moon, true)
}

func (o *Observer) bodyAltAz(times []time.Time, position func(time.Time) (float64, float64, float64, error), parallax bool) ([]astro.HorizontalCoord, error) {
	out := make([]astro.HorizontalCoord, len(times))
	for j, t := range times {
		ra, dec, dist, err := position(t)
		if err != nil {
			return nil, err
		}
		hc := o.altAzOf(ra, dec, t)
		if parallax {
			hc.ElDeg -= astro.ParallaxInAltitude(hc.ElDeg, dist)
		}
		out[j] = hc
	}
	return out, nil
}

// TargetMeridianTransitTimes returns, for each target and each time, the
// next meridian transit at or after that time. Results are cached per
// (times, targets) pair.
func (o *Observer) TargetMeridianTransitTimes(times []time.Time, targets []FixedTarget) [][]time.Time {
	key := timesKey(times) + "#" + targetsKey(targets)
	if got, ok := o.cache.transit[key]; ok {
		return unflattenTimes(got, len(targets), len(times))
	}

	flat := make([]time.Time, 0, len(targets)*len(times))
	for _, tgt := range targets {
		for _, t := range times {
			flat = append(flat, o.nextMeridianTransit(t, tgt))
		}
	}
	o.cache.transit[key] = flat
	return unflattenTimes(flat, len(targets), len(times))
}

// nextMeridianTransit finds the next instant at or after t when the target
// crosses the local meridian (hour angle zero), from the sidereal rate.
func (o *Observer) nextMeridianTransit(t time.Time, target FixedTarget) time.Time {
	lst := astro.LocalSiderealTime(t, o.Longitude)
	deltaDeg := target.RAdeg - lst
	for deltaDeg < 0 {
		deltaDeg += 360
	}
	// Sidereal degrees advance at 360.98564736629 per solar day.
	days := deltaDeg / 360.98564736629
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// withZeroPressure runs fn with the observer's pressure forced to zero and
// restores the previous value on every exit path.
func (o *Observer) withZeroPressure(fn func() error) error {
	old := o.Pressure
	o.Pressure = 0
	defer func() { o.Pressure = old }()
	return fn()
}

func unflattenTimes(flat []time.Time, rows, cols int) [][]time.Time {
	out := make([][]time.Time, rows)
	for i := range out {
		out[i] = flat[i*cols : (i+1)*cols]
	}
	return out
}
