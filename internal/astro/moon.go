package astro

import (
	"math"
	"time"
)

// EarthRadiusKm is the equatorial radius of the Earth.
const EarthRadiusKm = 6378.14

// MoonPosition returns the geocentric equatorial coordinates of the Moon
// (RA/Dec in degrees) and its distance in kilometers. Truncated version of
// the ELP-derived series in Meeus, "Astronomical Algorithms" ch. 47,
// keeping the dominant periodic terms. Accuracy is a few arcminutes in
// position and ~30 km in distance, ample for separation constraints and
// moon-up tests.
func MoonPosition(t time.Time) (raDeg, decDeg, distKm float64) {
	jd := JulianDate(t)
	T := (jd - 2451545.0) / 36525.0

	// Fundamental arguments (degrees).
	Lp := normalizeAngle360(218.3164477 + 481267.88123421*T - 0.0015786*T*T + T*T*T/538841)
	D := normalizeAngle360(297.8501921 + 445267.1114034*T - 0.0018819*T*T + T*T*T/545868)
	M := normalizeAngle360(357.5291092 + 35999.0502909*T - 0.0001536*T*T)
	Mp := normalizeAngle360(134.9633964 + 477198.8675055*T + 0.0087414*T*T + T*T*T/69699)
	F := normalizeAngle360(93.2720950 + 483202.0175233*T - 0.0036539*T*T - T*T*T/3526000)

	d := degToRad(D)
	m := degToRad(M)
	mp := degToRad(Mp)
	f := degToRad(F)

	// Longitude series (degrees).
	lon := Lp +
		6.288774*math.Sin(mp) +
		1.274027*math.Sin(2*d-mp) +
		0.658314*math.Sin(2*d) +
		0.213618*math.Sin(2*mp) -
		0.185116*math.Sin(m) -
		0.114332*math.Sin(2*f) +
		0.058793*math.Sin(2*d-2*mp) +
		0.057066*math.Sin(2*d-m-mp) +
		0.053322*math.Sin(2*d+mp) +
		0.045758*math.Sin(2*d-m) -
		0.040923*math.Sin(m-mp) -
		0.034720*math.Sin(d) -
		0.030383*math.Sin(m+mp)

	// Latitude series (degrees).
	lat := 5.128122*math.Sin(f) +
		0.280602*math.Sin(mp+f) +
		0.277693*math.Sin(mp-f) +
		0.173237*math.Sin(2*d-f) +
		0.055413*math.Sin(2*d+f-mp) +
		0.046271*math.Sin(2*d-f-mp) +
		0.032573*math.Sin(2*d+f)

	// Distance series (kilometers).
	distKm = 385000.56 -
		20905.355*math.Cos(mp) -
		3699.111*math.Cos(2*d-mp) -
		2955.968*math.Cos(2*d) -
		569.925*math.Cos(2*mp)

	// Ecliptic to equatorial.
	raDeg, decDeg = EclipticToEquatorial(normalizeAngle360(lon), lat, obliquity(T))
	return raDeg, decDeg, distKm
}

// EclipticToEquatorial converts ecliptic longitude/latitude to RA/Dec, all
// in degrees, for a given obliquity of the ecliptic.
func EclipticToEquatorial(lonDeg, latDeg, epsDeg float64) (raDeg, decDeg float64) {
	lon := degToRad(lonDeg)
	lat := degToRad(latDeg)
	eps := degToRad(epsDeg)

	ra := math.Atan2(
		math.Sin(lon)*math.Cos(eps)-math.Tan(lat)*math.Sin(eps),
		math.Cos(lon))
	dec := math.Asin(math.Sin(lat)*math.Cos(eps) + math.Cos(lat)*math.Sin(eps)*math.Sin(lon))

	raDeg = radToDeg(ra)
	if raDeg < 0 {
		raDeg += 360
	}
	return raDeg, radToDeg(dec)
}

// IlluminatedFraction returns the fraction of the lunar disk that is lit,
// in [0, 1], given geocentric equatorial positions and distances of the Sun
// and the Moon (Meeus ch. 48).
func IlluminatedFraction(sunRA, sunDec, sunDistKm, moonRA, moonDec, moonDistKm float64) float64 {
	// Geocentric elongation of the Moon from the Sun.
	psi := degToRad(AngularSeparation(sunRA, sunDec, moonRA, moonDec))

	// Phase angle: Sun-Moon-Earth.
	i := math.Atan2(sunDistKm*math.Sin(psi), moonDistKm-sunDistKm*math.Cos(psi))

	return clamp((1+math.Cos(i))/2, 0, 1)
}

// ParallaxInAltitude returns the correction in degrees to subtract from a
// geocentric altitude to obtain the topocentric altitude of a body at the
// given distance. Significant only for the Moon.
func ParallaxInAltitude(elDeg, distKm float64) float64 {
	if distKm <= 0 {
		return 0
	}
	hp := math.Asin(EarthRadiusKm / distKm)
	return radToDeg(math.Asin(math.Sin(hp) * math.Cos(degToRad(elDeg))))
}
