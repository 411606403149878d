package almanac

import "time"

// MoonTransitResult holds the meridian transit candidates for one civil day.
// Main is the expected single daily transit. Invert is a secondary candidate
// that appears when two transit-like instants land on the same calendar day
// (high latitudes, date-line neighborhoods).
type MoonTransitResult struct {
	Main   *time.Time
	Invert *time.Time
}

// pairMidpoint returns the arithmetic midpoint of two timestamps. This is a
// deliberate simplification: the Moon's culmination is approximated as the
// halfway point of a rise/set pair, and the inputs are not reordered first.
func pairMidpoint(a, b time.Time) time.Time {
	return a.Add(b.Sub(a) / 2)
}

// sameCivilDay reports whether two instants fall on the same calendar date
// in the location of the reference instant.
func sameCivilDay(t, ref time.Time) bool {
	t = t.In(ref.Location())
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// MoonTransit estimates the Moon's meridian transit for the civil day of the
// given rise/set pair. Because moonrise and moonset drift roughly 50 minutes
// per day, the transit matching a calendar day does not always lie between
// that day's own rise and set; candidates built from the neighboring days'
// events are considered too. A zero rise or set timestamp means that event
// did not occur that day.
//
// The rules run in order and later rules may overwrite earlier results:
//
//  1. Both present and rise < set: midpoint becomes Main. Both present but
//     rise >= set: midpoint becomes Invert.
//  2. Rise present: the midpoint of rise and the NEXT day's set, if it lands
//     on the same calendar date, fills Main when still empty, else Invert.
//  3. Set present: the midpoint of set and the PREVIOUS day's rise, if it
//     lands on the same calendar date, overwrites Main unconditionally.
func MoonTransit(rise, set time.Time, lat, lng float64) (MoonTransitResult, error) {
	if err := checkCoords(lat, lng); err != nil {
		return MoonTransitResult{}, err
	}

	var res MoonTransitResult

	// The civil day under consideration.
	ref := rise
	if ref.IsZero() {
		ref = set
	}
	if ref.IsZero() {
		return res, nil
	}

	if !rise.IsZero() && !set.IsZero() {
		mid := pairMidpoint(rise, set)
		if rise.Before(set) {
			res.Main = &mid
		} else {
			res.Invert = &mid
		}
	}

	if !rise.IsZero() {
		next, err := GetMoonTimes(rise.AddDate(0, 0, 1), lat, lng, false)
		if err == nil && next.Set.Valid {
			cand := pairMidpoint(rise, next.Set.Time)
			if sameCivilDay(cand, ref) {
				if res.Main == nil {
					res.Main = &cand
				} else {
					res.Invert = &cand
				}
			}
		}
	}

	if !set.IsZero() {
		prev, err := GetMoonTimes(set.AddDate(0, 0, -1), lat, lng, false)
		if err == nil && prev.Rise.Valid {
			cand := pairMidpoint(set, prev.Rise.Time)
			if sameCivilDay(cand, ref) {
				res.Main = &cand
			}
		}
	}

	return res, nil
}
