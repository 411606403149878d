package almanac

import (
	"math"
	"time"

	"github.com/litescript/ls-almanac/internal/astro"
)

// j0 anchors the julian-cycle rounding to local solar noon.
const j0 = 0.0009

func julianCycle(d, lw float64) float64 {
	return math.Round(d - j0 - lw/(2*math.Pi))
}

func approxTransit(ht, lw, n float64) float64 {
	return j0 + (ht+lw)/(2*math.Pi) + n
}

// solarTransitJ refines an approximate transit with the equation-of-time
// terms.
func solarTransitJ(ds, M, L float64) float64 {
	return astro.J2000 + ds + 0.0053*math.Sin(M) - 0.0069*math.Sin(2*L)
}

// hourAngle returns the half-arc between transit and the instant the Sun
// reaches altitude h. The result is NaN when the altitude is never reached
// on that day (polar day or night).
func hourAngle(h, phi, dec float64) float64 {
	arg := (math.Sin(h) - math.Sin(phi)*math.Sin(dec)) / (math.Cos(phi) * math.Cos(dec))
	if arg < -1 || arg > 1 {
		return math.NaN()
	}
	return math.Acos(arg)
}

// observerDip returns the horizon depression in degrees for an observer
// height in meters above the surrounding terrain.
func observerDip(heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return -2.076 * math.Sqrt(heightM) / 60
}

// dayAnchor pins t to the middle of its civil day so that a query made at
// any hour solves the same day's events. The civil day boundary follows UTC
// or t's own location.
func dayAnchor(t time.Time, inUTC bool) time.Time {
	if inUTC {
		u := t.UTC()
		return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// civilTime converts a solved julian date into the caller's preferred clock.
func civilTime(j float64, t time.Time, inUTC bool) time.Time {
	ct := astro.FromJulian(j)
	if ct.IsZero() || inUTC {
		return ct
	}
	return ct.In(t.Location())
}

// solarDay carries the per-day intermediate values shared by every
// threshold solve.
type solarDay struct {
	lw, phi float64
	n       float64
	ds      float64
	M, L    float64
	dec     float64
	jNoon   float64
}

func solveSolarDay(t time.Time, lat, lng float64, inUTC bool) solarDay {
	var s solarDay
	s.lw = astro.Rad * -lng
	s.phi = astro.Rad * lat

	d := astro.ToDays(dayAnchor(t, inUTC))
	s.n = julianCycle(d, s.lw)
	s.ds = approxTransit(0, s.lw, s.n)
	s.M = astro.SolarMeanAnomaly(s.ds)
	s.L = astro.EclipticLongitude(s.M)
	s.dec = astro.Declination(s.L, 0)
	s.jNoon = solarTransitJ(s.ds, s.M, s.L)
	return s
}

// riseSetJ returns the julian dates of the rise and set crossings of the
// given altitude (degrees). Either may be NaN when unreachable.
func (s solarDay) riseSetJ(angleDeg float64) (jRise, jSet float64) {
	w := hourAngle(astro.Rad*angleDeg, s.phi, s.dec)
	if math.IsNaN(w) {
		return math.NaN(), math.NaN()
	}
	jSet = solarTransitJ(approxTransit(w, s.lw, s.n), s.M, s.L)
	jRise = s.jNoon - (jSet - s.jNoon)
	return jRise, jSet
}

// SunTimes solves every registered threshold for the civil day containing t
// and returns the events keyed by name. Solar noon and nadir are always
// present and always valid. When includeDeprecated is set, each alias
// appears as a copy of its canonical event under the alias name.
func (r *Registry) SunTimes(t time.Time, lat, lng, heightM float64, includeDeprecated, inUTC bool) (map[string]EventTime, error) {
	if err := checkCoords(lat, lng); err != nil {
		return nil, err
	}

	s := solveSolarDay(t, lat, lng, inUTC)
	dh := observerDip(heightM)

	jNadir := s.jNoon - 0.5
	result := map[string]EventTime{
		"solarNoon": {
			Name:       "solarNoon",
			Time:       civilTime(s.jNoon, t, inUTC),
			JulianDate: s.jNoon,
			Valid:      true,
			Position:   PositionTransit,
		},
		"nadir": {
			Name:       "nadir",
			Time:       civilTime(jNadir, t, inUTC),
			JulianDate: jNadir,
			Valid:      true,
			Position:   PositionTransit,
		},
	}

	for _, th := range r.Thresholds() {
		jRise, jSet := s.riseSetJ(th.AngleDeg + dh)

		result[th.RiseName] = EventTime{
			Name:           th.RiseName,
			Time:           civilTime(jRise, t, inUTC),
			JulianDate:     jRise,
			ElevationAngle: th.AngleDeg,
			Valid:          !math.IsNaN(jRise),
			Position:       PositionRise,
		}
		result[th.SetName] = EventTime{
			Name:           th.SetName,
			Time:           civilTime(jSet, t, inUTC),
			JulianDate:     jSet,
			ElevationAngle: th.AngleDeg,
			Valid:          !math.IsNaN(jSet),
			Position:       PositionSet,
		}
	}

	if includeDeprecated {
		for _, a := range r.Aliases() {
			canonical, ok := r.ResolveAlias(a.Name)
			if !ok {
				continue
			}
			if ev, ok := result[canonical]; ok {
				ev.Name = a.Name
				result[a.Name] = ev
			}
		}
	}

	return result, nil
}

// SunTimePair is the rise/set solution for one custom altitude.
type SunTimePair struct {
	Rise EventTime
	Set  EventTime
}

// SunTime solves a single custom altitude threshold for the civil day
// containing t. The angle is degrees unless isDegrees is false. Custom
// angles get the observer dip correction but no refraction: the standard
// horizon thresholds already embed refraction in their angle values, while
// an arbitrary threshold far from the horizon must not be bent.
func (r *Registry) SunTime(t time.Time, lat, lng, elevationAngle, heightM float64, isDegrees, inUTC bool) (SunTimePair, error) {
	if err := checkCoords(lat, lng); err != nil {
		return SunTimePair{}, err
	}
	if math.IsNaN(elevationAngle) {
		return SunTimePair{}, ErrInvalidElevation
	}
	if !isDegrees {
		elevationAngle = astro.Deg(elevationAngle)
	}

	s := solveSolarDay(t, lat, lng, inUTC)
	jRise, jSet := s.riseSetJ(elevationAngle + observerDip(heightM))

	return SunTimePair{
		Rise: EventTime{
			Name:           "rise",
			Time:           civilTime(jRise, t, inUTC),
			JulianDate:     jRise,
			ElevationAngle: elevationAngle,
			Valid:          !math.IsNaN(jRise),
			Position:       PositionRise,
		},
		Set: EventTime{
			Name:           "set",
			Time:           civilTime(jSet, t, inUTC),
			JulianDate:     jSet,
			ElevationAngle: elevationAngle,
			Valid:          !math.IsNaN(jSet),
			Position:       PositionSet,
		},
	}, nil
}

// GetSunTimes solves the default registry's thresholds.
func GetSunTimes(t time.Time, lat, lng, heightM float64, includeDeprecated, inUTC bool) (map[string]EventTime, error) {
	return std.SunTimes(t, lat, lng, heightM, includeDeprecated, inUTC)
}

// GetSunTime solves a single custom threshold against the default registry.
func GetSunTime(t time.Time, lat, lng, elevationAngle, heightM float64, isDegrees, inUTC bool) (SunTimePair, error) {
	return std.SunTime(t, lat, lng, elevationAngle, heightM, isDegrees, inUTC)
}
