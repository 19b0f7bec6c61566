package astro

import (
	"math"
	"time"
)

// AU is the astronomical unit in kilometers.
const AU = 149597870.7

// SunPosition returns the apparent geocentric equatorial coordinates of the
// Sun (RA/Dec in degrees) and its distance in kilometers. Based on the
// low-precision solar ephemeris of the Astronomical Almanac; good to about
// 0.01° over a few centuries around J2000, which is ample for separation
// angles and twilight altitudes.
func SunPosition(t time.Time) (raDeg, decDeg, distKm float64) {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	// Mean longitude and mean anomaly (degrees).
	L0 := normalizeAngle360(280.46646 + 36000.76983*T + 0.0003032*T*T)
	M := normalizeAngle360(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Equation of center.
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	sunLon := L0 + C
	trueAnom := M + C

	// Radius vector in AU.
	e := 0.016708634 - 0.000042037*T - 0.0000001267*T*T
	R := (1.000001018 * (1 - e*e)) / (1 + e*math.Cos(degToRad(trueAnom)))

	// Apparent longitude, corrected for aberration and nutation.
	omega := 125.04 - 1934.136*T
	sunLonApp := sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega))

	// Obliquity of the ecliptic.
	eps0 := 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
	eps := eps0 + 0.00256*math.Cos(degToRad(omega))

	sunLonRad := degToRad(sunLonApp)
	epsRad := degToRad(eps)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(sunLonRad), math.Cos(sunLonRad))
	raDeg = radToDeg(ra)
	if raDeg < 0 {
		raDeg += 360
	}
	decDeg = radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(sunLonRad)))

	return raDeg, decDeg, R * AU
}

// obliquity returns the mean obliquity of the ecliptic in degrees at time T
// (Julian centuries from J2000).
func obliquity(T float64) float64 {
	return 23.439291 - 0.0130042*T - 0.00000016*T*T + 0.000000504*T*T*T
}
