// Package almanac computes apparent Sun and Moon positions, rise/set and
// twilight event times for arbitrary altitude thresholds, Moon illumination
// and phase, and Moon meridian transit disambiguation.
//
// All operations are pure functions of their inputs plus a Registry of named
// altitude thresholds. The package-level functions use a shared default
// Registry; construct a separate Registry for test isolation or
// multi-instance use.
//
// Latitude and longitude are in degrees with longitude positive east.
// Heights are meters, angles are returned both in radians and degrees, and
// civil times are time.Time values (millisecond precision).
package almanac

import (
	"errors"
	"time"
)

// Validation errors. Invalid numeric input is a programming error surfaced
// immediately; an astronomically unreachable event is not an error and is
// reported through EventTime.Valid instead.
var (
	ErrInvalidCoordinates = errors.New("latitude and longitude must be numbers")
	ErrInvalidElevation   = errors.New("elevation angle must be a number")
	ErrInvalidAzimuth     = errors.New("target azimuth must be a number")
	ErrInvalidLongitude   = errors.New("longitude must be a number")
)

// EventPosition classifies which side of the sky arc an event time belongs to.
type EventPosition int

const (
	// PositionRise marks an ascending threshold crossing.
	PositionRise EventPosition = iota
	// PositionSet marks a descending threshold crossing.
	PositionSet
	// PositionTransit marks a meridian event (solar noon, nadir).
	PositionTransit
)

// String returns the position name.
func (p EventPosition) String() string {
	switch p {
	case PositionRise:
		return "rise"
	case PositionSet:
		return "set"
	case PositionTransit:
		return "transit"
	default:
		return "?"
	}
}

// EventTime is one solved threshold crossing. A crossing that does not occur
// on the requested civil day (polar day or night, threshold never reached)
// has Valid set to false and a zero Time; that is an expected outcome, not a
// failure.
type EventTime struct {
	Name           string
	Time           time.Time
	JulianDate     float64
	ElevationAngle float64 // target altitude in degrees
	Valid          bool
	Position       EventPosition
}
