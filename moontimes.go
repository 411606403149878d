package almanac

import (
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// moonTargetDeg is the altitude of the Moon's upper limb at rise/set,
// degrees. It plays the role the -0.833° horizon angle plays for the Sun;
// refraction and parallax are already part of the apparent altitude.
const moonTargetDeg = 0.133

// moonScanSteps is the fixed number of hourly samples per civil day. The
// scan never iterates beyond it, so a day with no crossing terminates in
// bounded time.
const moonScanSteps = 24

// MoonTimes is the Moon rise/set solution for one civil day. On days where
// the Moon never crosses the threshold, both events are invalid and exactly
// one of AlwaysUp or AlwaysDown is set.
type MoonTimes struct {
	Rise       EventTime
	Set        EventTime
	AlwaysUp   bool
	AlwaysDown bool
}

// GetMoonTimes finds the Moon's rise and set for the civil day containing t.
// The Moon has no closed-form solve: its apparent altitude is sampled at
// hourly steps across the day and crossings of the rise/set threshold are
// located by linear interpolation inside the bracketing hour. Rise and set
// drift ~50 minutes per day, so either may be absent on any given date.
func GetMoonTimes(t time.Time, lat, lng float64, inUTC bool) (MoonTimes, error) {
	if err := checkCoords(lat, lng); err != nil {
		return MoonTimes{}, err
	}

	var start time.Time
	if inUTC {
		u := t.UTC()
		start = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}

	phi := astro.Rad * lat
	lw := astro.Rad * -lng
	target := astro.Rad * moonTargetDeg

	// Sample altitude-above-threshold at each hour boundary.
	var h [moonScanSteps + 1]float64
	for i := 0; i <= moonScanSteps; i++ {
		h[i] = moonAltitude(astro.HoursLater(start, float64(i)), phi, lw) - target
	}

	var rise, set time.Time
	var hasRise, hasSet bool

	for i := 0; i < moonScanSteps; i++ {
		if !hasRise && h[i] <= 0 && h[i+1] > 0 {
			rise = crossingTime(start, i, h[i], h[i+1])
			hasRise = true
		}
		if !hasSet && h[i] > 0 && h[i+1] <= 0 {
			set = crossingTime(start, i, h[i], h[i+1])
			hasSet = true
		}
		if hasRise && hasSet {
			break
		}
	}

	mt := MoonTimes{
		Rise: EventTime{Name: "moonrise", ElevationAngle: moonTargetDeg, Position: PositionRise},
		Set:  EventTime{Name: "moonset", ElevationAngle: moonTargetDeg, Position: PositionSet},
	}
	if hasRise {
		mt.Rise.Time = rise
		mt.Rise.JulianDate = astro.ToJulian(rise)
		mt.Rise.Valid = true
	}
	if hasSet {
		mt.Set.Time = set
		mt.Set.JulianDate = astro.ToJulian(set)
		mt.Set.Valid = true
	}
	if !hasRise && !hasSet {
		if h[0] > 0 {
			mt.AlwaysUp = true
		} else {
			mt.AlwaysDown = true
		}
	}

	return mt, nil
}

// crossingTime interpolates the threshold crossing inside hour i, given the
// bracketing sample values.
func crossingTime(start time.Time, i int, h0, h1 float64) time.Time {
	frac := h0 / (h0 - h1)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return astro.HoursLater(start, float64(i)+frac)
}
