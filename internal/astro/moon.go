package astro

import "math"

// MoonCoords returns the Moon's equatorial coordinates and distance for a day
// number. The series keeps only the largest perturbation term in each of
// longitude, latitude and distance; that is enough for rise/set and phase
// work near the present epoch.
func MoonCoords(d float64) Equatorial {
	L := Rad * (218.316 + 13.176396*d) // mean longitude
	M := Rad * (134.963 + 13.064993*d) // mean anomaly
	F := Rad * (93.272 + 13.229350*d)  // mean distance (argument of latitude)

	l := L + Rad*6.289*math.Sin(M)     // longitude
	b := Rad * 5.128 * math.Sin(F)     // latitude
	dist := 385001 - 20905*math.Cos(M) // distance to the Moon in km

	return Equatorial{
		RA:   RightAscension(l, b),
		Dec:  Declination(l, b),
		Dist: dist,
	}
}
