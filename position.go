package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Position is the local apparent position of a body. Angles are radians with
// degree-scaled twins; azimuth is measured from north through east.
type Position struct {
	Azimuth         float64
	Altitude        float64
	Zenith          float64
	AzimuthDegrees  float64
	AltitudeDegrees float64
	ZenithDegrees   float64
	Declination     float64 // radians
}

// MoonPosition extends Position with the Moon's distance and parallactic
// angle.
type MoonPosition struct {
	Position
	Distance                float64 // km
	ParallacticAngle        float64 // radians
	ParallacticAngleDegrees float64
}

// newPosition fills in the degree twins and zenith for a solved azimuth,
// altitude and declination (radians).
func newPosition(az, alt, dec float64) Position {
	zenith := math.Pi/2 - alt
	return Position{
		Azimuth:         az,
		Altitude:        alt,
		Zenith:          zenith,
		AzimuthDegrees:  astro.Deg(az),
		AltitudeDegrees: astro.Deg(alt),
		ZenithDegrees:   astro.Deg(zenith),
		Declination:     dec,
	}
}

// checkCoords rejects not-a-number latitude or longitude.
func checkCoords(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsNaN(lng) {
		return ErrInvalidCoordinates
	}
	return nil
}

// GetPosition returns the Sun's apparent position for an observer. The
// altitude is geometric: refraction is only folded into horizon-crossing
// event thresholds, never into a raw position readout.
func GetPosition(t time.Time, lat, lng float64) (Position, error) {
	if err := checkCoords(lat, lng); err != nil {
		return Position{}, err
	}

	lw := astro.Rad * -lng
	phi := astro.Rad * lat
	d := astro.ToDays(t)

	c := astro.SunCoords(d)
	H := astro.SiderealTime(d, lw) - c.RA

	az := astro.Azimuth(H, phi, c.Dec)
	alt := astro.Altitude(H, phi, c.Dec)
	return newPosition(az, alt, c.Dec), nil
}

// GetMoonPosition returns the Moon's apparent position for an observer. The
// geocentric altitude is corrected to topocentric using the Moon's distance,
// then lifted by refraction; the Moon is near enough that both corrections
// are visible at the horizon.
func GetMoonPosition(t time.Time, lat, lng float64) (MoonPosition, error) {
	if err := checkCoords(lat, lng); err != nil {
		return MoonPosition{}, err
	}

	lw := astro.Rad * -lng
	phi := astro.Rad * lat
	d := astro.ToDays(t)

	c := astro.MoonCoords(d)
	H := astro.SiderealTime(d, lw) - c.RA

	alt := astro.Altitude(H, phi, c.Dec)
	alt -= astro.Parallax(alt, c.Dist)
	alt += astro.Refraction(alt)

	pa := astro.ParallacticAngle(H, phi, c.Dec)

	return MoonPosition{
		Position:                newPosition(astro.Azimuth(H, phi, c.Dec), alt, c.Dec),
		Distance:                c.Dist,
		ParallacticAngle:        pa,
		ParallacticAngleDegrees: astro.Deg(pa),
	}, nil
}

// moonAltitude returns the Moon's apparent topocentric altitude (radians)
// for the event scanners.
func moonAltitude(t time.Time, phi, lw float64) float64 {
	d := astro.ToDays(t)
	c := astro.MoonCoords(d)
	H := astro.SiderealTime(d, lw) - c.RA

	alt := astro.Altitude(H, phi, c.Dec)
	alt -= astro.Parallax(alt, c.Dist)
	alt += astro.Refraction(alt)
	return alt
}
