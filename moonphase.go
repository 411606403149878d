package almanac

import (
	"math"
	"sort"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Mean synodic month in milliseconds.
const lunarCycleMs = 2551442778.0

// firstNewMoon2000 is the reference new moon of 2000-01-06 18:14 UTC used to
// seed the quarter-phase search.
var firstNewMoon2000 = time.UnixMilli(947178840000).UTC()

// sunDistKm is the mean Earth-Sun distance, used for the illumination
// geometry.
const sunDistKm = 149598000.0

// MoonPhaseName is one of the eight conventional phase buckets.
type MoonPhaseName int

const (
	NewMoon MoonPhaseName = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// String returns the phase name.
func (p MoonPhaseName) String() string {
	switch p {
	case NewMoon:
		return "newMoon"
	case WaxingCrescent:
		return "waxingCrescent"
	case FirstQuarter:
		return "firstQuarter"
	case WaxingGibbous:
		return "waxingGibbous"
	case FullMoon:
		return "fullMoon"
	case WaningGibbous:
		return "waningGibbous"
	case LastQuarter:
		return "lastQuarter"
	case WaningCrescent:
		return "waningCrescent"
	default:
		return "?"
	}
}

// Emoji returns the northern-hemisphere glyph for the phase.
func (p MoonPhaseName) Emoji() string {
	switch p {
	case NewMoon:
		return "🌑"
	case WaxingCrescent:
		return "🌒"
	case FirstQuarter:
		return "🌓"
	case WaxingGibbous:
		return "🌔"
	case FullMoon:
		return "🌕"
	case WaningGibbous:
		return "🌖"
	case LastQuarter:
		return "🌗"
	case WaningCrescent:
		return "🌘"
	default:
		return "?"
	}
}

// PhaseEvent is an upcoming quarter-phase instant.
type PhaseEvent struct {
	Value float64 // 0, 0.25, 0.5 or 0.75
	Name  MoonPhaseName
	Time  time.Time
}

// Illumination describes how the Moon is lit at an instant.
type Illumination struct {
	// Fraction of the disk that is illuminated, in [0, 1].
	Fraction float64
	// PhaseValue runs from 0 (new) through 0.5 (full) back toward 1,
	// in [0, 1); values below 0.5 are waxing.
	PhaseValue float64
	// Phase is the bucket PhaseValue falls into.
	Phase MoonPhaseName
	// BrightLimbAngle is the midpoint angle of the bright limb in radians,
	// measured eastward from the Moon's celestial north.
	BrightLimbAngle float64
	// NextPhases holds the next four quarter-phase instants in strictly
	// increasing time order.
	NextPhases []PhaseEvent
}

// phaseValueAt computes the signed phase for a day number.
func phaseValueAt(d float64) (phase, fraction, limbAngle float64) {
	s := astro.SunCoords(d)
	m := astro.MoonCoords(d)

	// Geocentric elongation and the illuminated-fraction phase angle.
	elong := astro.AngularSeparation(s, m)
	inc := math.Atan2(sunDistKm*math.Sin(elong), m.Dist-sunDistKm*math.Cos(elong))
	angle := math.Atan2(
		math.Cos(s.Dec)*math.Sin(s.RA-m.RA),
		math.Sin(s.Dec)*math.Cos(m.Dec)-math.Cos(s.Dec)*math.Sin(m.Dec)*math.Cos(s.RA-m.RA),
	)

	phase = 0.5 + 0.5*inc*math.Copysign(1, angle)/math.Pi
	if phase >= 1 {
		phase -= 1
	}
	fraction = (1 + math.Cos(inc)) / 2
	return phase, fraction, angle
}

// phaseBucket maps a phase value onto the eight equal-width buckets centered
// on the principal phases.
func phaseBucket(phase float64) MoonPhaseName {
	idx := int(math.Round(phase*8)) % 8
	return MoonPhaseName(idx)
}

// GetMoonIllumination returns the Moon's illuminated fraction, phase and
// bright-limb angle for an instant, plus the next four quarter phases.
func GetMoonIllumination(t time.Time) Illumination {
	phase, fraction, angle := phaseValueAt(astro.ToDays(t))

	return Illumination{
		Fraction:        fraction,
		PhaseValue:      phase,
		Phase:           phaseBucket(phase),
		BrightLimbAngle: angle,
		NextPhases:      nextPhaseEvents(t),
	}
}

// quarterName maps a quarter value to its phase bucket.
func quarterName(q float64) MoonPhaseName {
	switch q {
	case 0.25:
		return FirstQuarter
	case 0.5:
		return FullMoon
	case 0.75:
		return LastQuarter
	default:
		return NewMoon
	}
}

// nextPhaseEvents finds the next instant of each quarter phase after t,
// sorted by time.
func nextPhaseEvents(t time.Time) []PhaseEvent {
	events := make([]PhaseEvent, 0, 4)
	for _, q := range []float64{0, 0.25, 0.5, 0.75} {
		events = append(events, PhaseEvent{
			Value: q,
			Name:  quarterName(q),
			Time:  nextQuarter(t, q),
		})
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

// phaseSearchStep and phaseSearchCap bound the refinement scan: about 4.5
// days of minute steps, comfortably covering the drift between the mean
// cycle estimate and the true phase instant.
const (
	phaseSearchStep = time.Minute
	phaseSearchCap  = 6500
)

// nextQuarter finds the first instant after t at which the phase value
// crosses q. A mean-cycle estimate seeded from the 2000 reference new moon
// narrows the scan window; the crossing itself is located by stepping in
// fixed increments, capped so the search always terminates. The true instant
// can trail the mean estimate by half a day, so an estimate at or before t
// may still have its crossing ahead of t: the near window is scanned first,
// and the estimate advances a whole cycle only when that window holds no
// crossing. If both windows come up empty the final estimate is returned.
func nextQuarter(t time.Time, q float64) time.Time {
	elapsed := float64(t.UnixMilli() - firstNewMoon2000.UnixMilli())
	cycles := math.Floor(elapsed / lunarCycleMs)
	cycleDur := time.Duration(lunarCycleMs * float64(time.Millisecond))

	est := firstNewMoon2000.Add(time.Duration((cycles + q) * lunarCycleMs * float64(time.Millisecond)))

	for attempt := 0; attempt < 2; attempt++ {
		cursor := est.Add(-36 * time.Hour)
		if cursor.Before(t) {
			cursor = t
		}
		if found, ok := scanQuarter(cursor, q); ok {
			return found
		}
		est = est.Add(cycleDur)
	}

	return est
}

// scanQuarter steps forward from cursor looking for the phase crossing of q,
// giving up after phaseSearchCap steps.
func scanQuarter(cursor time.Time, q float64) (time.Time, bool) {
	prev, _, _ := phaseValueAt(astro.ToDays(cursor))
	for i := 0; i < phaseSearchCap; i++ {
		cursor = cursor.Add(phaseSearchStep)
		cur, _, _ := phaseValueAt(astro.ToDays(cursor))

		var crossed bool
		if q == 0 {
			// New moon is the wrap from ~1 back to ~0.
			crossed = cur < prev-0.5
		} else {
			crossed = prev < q && cur >= q
		}
		if crossed {
			return cursor, true
		}
		prev = cur
	}
	return time.Time{}, false
}
