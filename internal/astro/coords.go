// Package astro provides the celestial-mechanics substrate for the
// constraint engine: time scales, coordinate transforms, analytic solar
// and lunar ephemerides, and angular separations.
package astro

import (
	"math"
	"time"
)

// HorizontalCoord is a position in the local horizontal frame.
type HorizontalCoord struct {
	AzDeg float64 // Azimuth in degrees (0=N, 90=E, 180=S, 270=W)
	ElDeg float64 // Elevation/altitude in degrees (0=horizon, 90=zenith)
}

// EquatorialToHorizontal converts J2000 equatorial coordinates (RA/Dec in
// degrees) to the horizontal frame at latitude latDeg, longitude lonDeg
// (east positive) for time t.
//
// Conventions:
//   - Azimuth: 0° = North, 90° = East, 180° = South, 270° = West
//   - Elevation: 0° = horizon, 90° = zenith
//
// The returned elevation is geometric (unrefracted); apply Refraction
// separately when an apparent altitude is wanted.
func EquatorialToHorizontal(raDeg, decDeg, latDeg, lonDeg float64, t time.Time) HorizontalCoord {
	lat := degToRad(latDeg)
	ra := degToRad(raDeg)
	dec := degToRad(decDeg)

	lst := LocalSiderealTime(t, lonDeg)

	// Hour angle = LST - RA
	ha := degToRad(lst) - ra

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(clamp(sinAlt, -1, 1))

	cosAz := (math.Sin(dec) - math.Sin(alt)*math.Sin(lat)) / (math.Cos(alt) * math.Cos(lat))
	az := math.Acos(clamp(cosAz, -1, 1))

	// Positive hour angle puts the object west of the meridian.
	if math.Sin(ha) > 0 {
		az = 2*math.Pi - az
	}

	return HorizontalCoord{
		AzDeg: radToDeg(az),
		ElDeg: radToDeg(alt),
	}
}

// Refraction returns the atmospheric refraction correction in degrees for a
// geometric altitude, scaled by pressure in hPa (Bennett 1982). The apparent
// altitude is the geometric altitude plus the returned value. Zero pressure
// yields zero refraction, which is how constraint evaluation suppresses the
// nonsense refraction values that appear for objects below the horizon.
func Refraction(elDeg, pressureHPa float64) float64 {
	if pressureHPa <= 0 {
		return 0
	}
	if elDeg < -5 {
		// The formula diverges well below the horizon.
		elDeg = -5
	}
	// Bennett's formula gives refraction in arcminutes at 1010 hPa.
	r := 1.0 / math.Tan(degToRad(elDeg+7.31/(elDeg+4.4)))
	return r / 60.0 * (pressureHPa / 1010.0)
}

// AngularSeparation returns the great-circle separation in degrees between
// two points on a sphere given as (longitude-like, latitude-like) pairs in
// degrees. It works equally for RA/Dec and Az/El pairs.
func AngularSeparation(lon1, lat1, lon2, lat2 float64) float64 {
	l1 := degToRad(lon1)
	b1 := degToRad(lat1)
	l2 := degToRad(lon2)
	b2 := degToRad(lat2)

	// Haversine form, stable for small separations.
	dLon := l2 - l1
	dLat := b2 - b1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(b1)*math.Cos(b2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if a > 1 {
		a = 1
	}
	return radToDeg(2 * math.Asin(math.Sqrt(a)))
}

// LocalSiderealTime returns the local sidereal time in degrees for a UTC
// time and an east-positive longitude.
func LocalSiderealTime(t time.Time, lonDeg float64) float64 {
	return normalizeAngle360(GreenwichMeanSiderealTime(t) + lonDeg)
}

// GreenwichMeanSiderealTime returns GMST in degrees (IAU 1982 formula).
func GreenwichMeanSiderealTime(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	gmst := 280.46061837 +
		360.98564736629*(jd-2451545.0) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return normalizeAngle360(gmst)
}

// JulianDate returns the Julian Date for a time, including the fractional
// day from the clock time.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) +
		float64(t.Minute())/60 +
		float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

func radToDeg(rad float64) float64 { return rad * 180 / math.Pi }
