package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// azimuthBisectionSteps halves a 24-hour window down to sub-millisecond
// resolution.
const azimuthBisectionSteps = 48

// GetSunTimeByAzimuth returns the instant within t's civil day at which the
// Sun reaches the target azimuth (north-based, increasing eastward; degrees
// unless isDegrees is false). The solve bisects on the assumption that
// azimuth increases monotonically through the day, which holds away from
// the poles; results at extreme latitudes are unreliable.
func GetSunTimeByAzimuth(t time.Time, lat, lng, targetAzimuth float64, isDegrees bool) (time.Time, error) {
	if err := checkCoords(lat, lng); err != nil {
		return time.Time{}, err
	}
	if math.IsNaN(targetAzimuth) {
		return time.Time{}, ErrInvalidAzimuth
	}

	if isDegrees {
		targetAzimuth *= astro.Rad
	}
	targetAzimuth = math.Mod(targetAzimuth, 2*math.Pi)
	if targetAzimuth < 0 {
		targetAzimuth += 2 * math.Pi
	}

	lo := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	hi := lo.Add(24 * time.Hour)

	lw := astro.Rad * -lng
	phi := astro.Rad * lat

	azAt := func(x time.Time) float64 {
		d := astro.ToDays(x)
		c := astro.SunCoords(d)
		H := astro.SiderealTime(d, lw) - c.RA
		return astro.Azimuth(H, phi, c.Dec)
	}

	for i := 0; i < azimuthBisectionSteps; i++ {
		mid := lo.Add(hi.Sub(lo) / 2)
		if azAt(mid) < targetAzimuth {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo.Add(hi.Sub(lo) / 2), nil
}

// GetSolarTime returns the apparent solar time corresponding to t at the
// given longitude: the clock for which the Sun transits at exactly 12:00.
// The offset between civil and solar time comes from the longitude and the
// equation of time; utcOffsetMinutes only selects which civil day's noon
// anchors the result, so away from day boundaries the result is the same
// for any offset.
func GetSolarTime(t time.Time, lng float64, utcOffsetMinutes int) (time.Time, error) {
	if math.IsNaN(lng) {
		return time.Time{}, ErrInvalidLongitude
	}

	zone := time.FixedZone("", utcOffsetMinutes*60)
	lt := t.In(zone)

	s := solveSolarDay(lt, 0, lng, false)
	noon := astro.FromJulian(s.jNoon)

	// The shift is nominal noon minus the solar noon of the selected civil
	// day, both as absolute instants. Anchoring nominal noon in UTC keeps
	// the shift a pure longitude/equation-of-time delta; building it in the
	// offset zone would move the result one-for-one with the offset.
	nominal := time.Date(lt.Year(), lt.Month(), lt.Day(), 12, 0, 0, 0, time.UTC)
	return t.Add(nominal.Sub(noon)), nil
}
