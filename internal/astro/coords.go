package astro

import "math"

// Rad converts degrees to radians when multiplied.
const Rad = math.Pi / 180

// Obliquity is the Earth's axial tilt in radians, held fixed at its J2000
// value. The series below do not model nutation, so a constant is consistent
// with their accuracy.
const Obliquity = Rad * 23.4397

// EarthRadiusKm is the mean Earth radius, used for lunar parallax.
const EarthRadiusKm = 6371.0

// Equatorial holds equatorial coordinates. Distance is zero for bodies where
// the series does not provide one (the Sun).
type Equatorial struct {
	RA   float64 // right ascension, radians
	Dec  float64 // declination, radians
	Dist float64 // distance in km, 0 if not modeled
}

// RightAscension converts ecliptic longitude l and latitude b (radians) to
// right ascension.
func RightAscension(l, b float64) float64 {
	return math.Atan2(math.Sin(l)*math.Cos(Obliquity)-math.Tan(b)*math.Sin(Obliquity), math.Cos(l))
}

// Declination converts ecliptic longitude l and latitude b (radians) to
// declination.
func Declination(l, b float64) float64 {
	return math.Asin(math.Sin(b)*math.Cos(Obliquity) + math.Cos(b)*math.Sin(Obliquity)*math.Sin(l))
}

// SiderealTime returns the local sidereal angle (radians) for a day number d
// and an observer longitude expressed as lw = -longitude in radians.
func SiderealTime(d, lw float64) float64 {
	return Rad*(280.16+360.9856235*d) - lw
}

// Azimuth returns the azimuth for hour angle H, latitude phi and declination
// dec (all radians). The result is measured from north through east, in
// [0, 2π).
func Azimuth(H, phi, dec float64) float64 {
	az := math.Atan2(math.Sin(H), math.Cos(H)*math.Sin(phi)-math.Tan(dec)*math.Cos(phi)) + math.Pi
	if az < 0 {
		az += 2 * math.Pi
	} else if az >= 2*math.Pi {
		az -= 2 * math.Pi
	}
	return az
}

// Altitude returns the geometric altitude for hour angle H, latitude phi and
// declination dec (all radians).
func Altitude(H, phi, dec float64) float64 {
	return math.Asin(math.Sin(phi)*math.Sin(dec) + math.Cos(phi)*math.Cos(dec)*math.Cos(H))
}

// ParallacticAngle returns the parallactic angle for hour angle H, latitude
// phi and declination dec (all radians).
func ParallacticAngle(H, phi, dec float64) float64 {
	return math.Atan2(math.Sin(H), math.Tan(phi)*math.Cos(dec)-math.Sin(dec)*math.Cos(H))
}

// Refraction returns the atmospheric refraction at geometric altitude h
// (radians), following formula 16.4 of Meeus, "Astronomical Algorithms",
// 2nd ed. Negative altitudes are clamped to the horizon value.
func Refraction(h float64) float64 {
	if h < 0 {
		h = 0
	}
	return 0.0002967 / math.Tan(h+0.00312536/(h+0.08901179))
}

// Parallax returns the altitude correction (radians) that moves a geocentric
// altitude to the topocentric value for a body at distKm kilometers. The
// correction is subtracted from the geocentric altitude; it matters for the
// Moon and is negligible for anything farther out.
func Parallax(h, distKm float64) float64 {
	if distKm <= 0 {
		return 0
	}
	return math.Asin(EarthRadiusKm/distKm) * math.Cos(h)
}

// AngularSeparation returns the angle (radians) between two equatorial
// positions via the spherical law of cosines.
func AngularSeparation(a, b Equatorial) float64 {
	c := math.Sin(a.Dec)*math.Sin(b.Dec) + math.Cos(a.Dec)*math.Cos(b.Dec)*math.Cos(a.RA-b.RA)
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad / Rad
}
