// Package report renders computed almanac days as JSON and text tables for
// the headless modes.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	almanac "github.com/litescript/ls-almanac"
)

// Observer is the location a snapshot was computed for.
type Observer struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	HeightM   float64 `json:"height_m"`
}

// SunEventExport is a JSON-friendly sun event.
type SunEventExport struct {
	Name           string     `json:"name"`
	Time           *time.Time `json:"time,omitempty"`
	ElevationAngle float64    `json:"elevation_angle_deg"`
	Position       string     `json:"position"`
	Valid          bool       `json:"valid"`
}

// MoonExport bundles the Moon's day: rise/set, transit and illumination.
type MoonExport struct {
	Rise          *time.Time `json:"rise,omitempty"`
	Set           *time.Time `json:"set,omitempty"`
	AlwaysUp      bool       `json:"always_up"`
	AlwaysDown    bool       `json:"always_down"`
	Transit       *time.Time `json:"transit,omitempty"`
	TransitInvert *time.Time `json:"transit_invert,omitempty"`
	Fraction      float64    `json:"illuminated_fraction"`
	PhaseValue    float64    `json:"phase_value"`
	Phase         string     `json:"phase"`
	DistanceKm    float64    `json:"distance_km"`
}

// DaySnapshot is the JSON-serializable almanac for one civil day.
type DaySnapshot struct {
	Date       string           `json:"date"`
	ComputedAt time.Time        `json:"computed_at"`
	Observer   Observer         `json:"observer"`
	SunEvents  []SunEventExport `json:"sun_events"`
	Moon       MoonExport       `json:"moon"`
}

// BuildDaySnapshot computes the full almanac for the civil day of t. Sun
// events come out in registry order, rise before set per threshold, with the
// meridian events first.
func BuildDaySnapshot(reg *almanac.Registry, t time.Time, lat, lng, height float64) (*DaySnapshot, error) {
	times, err := reg.SunTimes(t, lat, lng, height, false, true)
	if err != nil {
		return nil, fmt.Errorf("sun times: %w", err)
	}

	snap := &DaySnapshot{
		Date:       t.Format("2006-01-02"),
		ComputedAt: time.Now().UTC(),
		Observer:   Observer{Latitude: lat, Longitude: lng, HeightM: height},
	}

	for _, name := range []string{"solarNoon", "nadir"} {
		snap.SunEvents = append(snap.SunEvents, exportEvent(times[name]))
	}
	for _, th := range reg.Thresholds() {
		snap.SunEvents = append(snap.SunEvents, exportEvent(times[th.RiseName]))
		snap.SunEvents = append(snap.SunEvents, exportEvent(times[th.SetName]))
	}

	mt, err := almanac.GetMoonTimes(t, lat, lng, true)
	if err != nil {
		return nil, fmt.Errorf("moon times: %w", err)
	}

	snap.Moon = MoonExport{
		AlwaysUp:   mt.AlwaysUp,
		AlwaysDown: mt.AlwaysDown,
	}
	if mt.Rise.Valid {
		rt := mt.Rise.Time
		snap.Moon.Rise = &rt
	}
	if mt.Set.Valid {
		st := mt.Set.Time
		snap.Moon.Set = &st
	}

	var riseT, setT time.Time
	if mt.Rise.Valid {
		riseT = mt.Rise.Time
	}
	if mt.Set.Valid {
		setT = mt.Set.Time
	}
	tr, err := almanac.MoonTransit(riseT, setT, lat, lng)
	if err == nil {
		snap.Moon.Transit = tr.Main
		snap.Moon.TransitInvert = tr.Invert
	}

	ill := almanac.GetMoonIllumination(t)
	snap.Moon.Fraction = ill.Fraction
	snap.Moon.PhaseValue = ill.PhaseValue
	snap.Moon.Phase = ill.Phase.String()

	if pos, err := almanac.GetMoonPosition(t, lat, lng); err == nil {
		snap.Moon.DistanceKm = pos.Distance
	}

	return snap, nil
}

func exportEvent(ev almanac.EventTime) SunEventExport {
	out := SunEventExport{
		Name:           ev.Name,
		ElevationAngle: ev.ElevationAngle,
		Position:       ev.Position.String(),
		Valid:          ev.Valid,
	}
	if ev.Valid {
		t := ev.Time
		out.Time = &t
	}
	return out
}

// WriteJSON writes the snapshot as indented JSON to the given writer.
func (s *DaySnapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummaryTable writes a text almanac table to the given writer.
func WriteSummaryTable(w io.Writer, s *DaySnapshot) {
	fmt.Fprintf(w, "Almanac for %s @ %.4f, %.4f\n", s.Date, s.Observer.Latitude, s.Observer.Longitude)
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "%-26s %-10s %8s\n", "Event", "Time (UTC)", "Angle")
	fmt.Fprintln(w, strings.Repeat("─", 52))

	for _, ev := range s.SunEvents {
		when := "—"
		if ev.Time != nil {
			when = ev.Time.UTC().Format("15:04:05")
		}
		fmt.Fprintf(w, "%-26s %-10s %7.2f°\n", ev.Name, when, ev.ElevationAngle)
	}

	fmt.Fprintln(w, strings.Repeat("─", 52))
	fmt.Fprintf(w, "Moon: %s, %.0f%% lit, %s km away\n",
		s.Moon.Phase,
		s.Moon.Fraction*100,
		humanize.Comma(int64(math.Round(s.Moon.DistanceKm))))

	switch {
	case s.Moon.AlwaysUp:
		fmt.Fprintln(w, "Moon above the horizon all day")
	case s.Moon.AlwaysDown:
		fmt.Fprintln(w, "Moon below the horizon all day")
	default:
		rise, set := "—", "—"
		if s.Moon.Rise != nil {
			rise = s.Moon.Rise.UTC().Format("15:04:05")
		}
		if s.Moon.Set != nil {
			set = s.Moon.Set.UTC().Format("15:04:05")
		}
		fmt.Fprintf(w, "Moonrise %s  Moonset %s", rise, set)
		if s.Moon.Transit != nil {
			fmt.Fprintf(w, "  Transit %s", s.Moon.Transit.UTC().Format("15:04:05"))
		}
		fmt.Fprintln(w)
	}
}
