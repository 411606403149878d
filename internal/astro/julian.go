// Package astro provides the spherical-astronomy substrate for the almanac:
// time scales, low-order solar and lunar ephemerides, and coordinate
// transformations between ecliptic, equatorial and horizontal frames.
//
// The series used here are accurate to a few arcminutes for a few centuries
// around J2000, which is sufficient for rise/set and twilight work. This is
// not a general-purpose ephemeris.
package astro

import (
	"math"
	"time"
)

// Time scale constants.
const (
	// DayMs is the length of a day in milliseconds.
	DayMs = 1000 * 60 * 60 * 24

	// J1970 is the Julian date of the Unix epoch.
	J1970 = 2440588

	// J2000 is the Julian date of the J2000.0 epoch (2000-01-01 12:00 TT).
	J2000 = 2451545
)

// ToJulian converts a civil time to a Julian date.
func ToJulian(t time.Time) float64 {
	return float64(t.UnixMilli())/DayMs - 0.5 + J1970
}

// FromJulian converts a Julian date back to civil time (UTC).
func FromJulian(j float64) time.Time {
	if math.IsNaN(j) {
		return time.Time{}
	}
	ms := math.Round((j + 0.5 - J1970) * DayMs)
	return time.UnixMilli(int64(ms)).UTC()
}

// ToDays returns the number of days since J2000.0 for a civil time.
func ToDays(t time.Time) float64 {
	return ToJulian(t) - J2000
}

// HoursLater returns t shifted forward by a fractional number of hours.
func HoursLater(t time.Time, h float64) time.Time {
	return t.Add(time.Duration(h * float64(time.Hour)))
}
