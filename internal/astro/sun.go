package astro

import "math"

// SolarMeanAnomaly returns the Sun's mean anomaly (radians) for a day number.
func SolarMeanAnomaly(d float64) float64 {
	return Rad * (357.5291 + 0.98560028*d)
}

// EclipticLongitude returns the Sun's ecliptic longitude (radians) from its
// mean anomaly, applying the equation of center and the longitude of
// perihelion.
func EclipticLongitude(M float64) float64 {
	C := Rad * (1.9148*math.Sin(M) + 0.02*math.Sin(2*M) + 0.0003*math.Sin(3*M))
	P := Rad * 102.9372 // perihelion of the Earth
	return M + C + P + math.Pi
}

// SunCoords returns the Sun's equatorial coordinates for a day number.
// The Sun's ecliptic latitude is treated as zero and no distance is modeled.
func SunCoords(d float64) Equatorial {
	M := SolarMeanAnomaly(d)
	L := EclipticLongitude(M)
	return Equatorial{
		RA:  RightAscension(L, 0),
		Dec: Declination(L, 0),
	}
}
