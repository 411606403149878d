package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	almanac "github.com/litescript/ls-almanac"
	"github.com/litescript/ls-almanac/internal/report"
)

// DashboardModel renders one civil day of the almanac: the sun event table,
// the moon panel and the live position readouts.
type DashboardModel struct {
	width  int
	height int

	snapshot *report.DaySnapshot
	illum    almanac.Illumination
	compErr  error

	now     time.Time
	sunPos  *almanac.Position
	moonPos *almanac.MoonPosition
}

// NewDashboardModel creates an empty dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData replaces the displayed day.
func (m DashboardModel) UpdateData(snap *report.DaySnapshot, illum almanac.Illumination, err error) DashboardModel {
	m.snapshot = snap
	m.illum = illum
	m.compErr = err
	return m
}

// SetNow refreshes the live position readouts for the given instant.
func (m DashboardModel) SetNow(now time.Time, lat, lng float64) DashboardModel {
	m.now = now
	if sp, err := almanac.GetPosition(now, lat, lng); err == nil {
		m.sunPos = &sp
	}
	if mp, err := almanac.GetMoonPosition(now, lat, lng); err == nil {
		m.moonPos = &mp
	}
	return m
}

// Update handles messages. The dashboard is display-only; navigation lives in
// the root model.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.compErr != nil {
		return "  " + errorStyle.Render("Error: "+m.compErr.Error()) + "\n"
	}
	if m.snapshot == nil {
		return "  Computing...\n"
	}

	left := m.renderSunTable()
	right := m.renderMoonPanel() + "\n" + m.renderLivePanel()

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m DashboardModel) renderSunTable() string {
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render("Sun") + "\n")
	b.WriteString("  " + headerStyle.Render(fmt.Sprintf("%-26s %-9s %7s", "Event", "UTC", "Angle")) + "\n")

	for _, ev := range m.snapshot.SunEvents {
		when := "    —"
		if ev.Time != nil {
			when = ev.Time.UTC().Format("15:04:05")
		}
		row := fmt.Sprintf("%-26s %-9s %6.2f°", ev.Name, when, ev.ElevationAngle)

		style := rowStyle
		if ev.Time != nil && ev.Time.Before(m.now) {
			style = pastRowStyle
		}
		if !ev.Valid {
			style = dimStyle
		}
		b.WriteString("  " + style.Render(row) + "\n")
	}

	return b.String()
}

func (m DashboardModel) renderMoonPanel() string {
	var b strings.Builder
	moon := m.snapshot.Moon

	b.WriteString(titleStyle.Render("Moon") + " " + m.illum.Phase.Emoji() + "\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("%s, %.0f%% illuminated", m.illum.Phase, m.illum.Fraction*100)) + "\n")
	b.WriteString(m.renderPhaseBar(m.illum.PhaseValue, 24) + "\n")
	b.WriteString(dimStyle.Render(humanize.Comma(int64(math.Round(moon.DistanceKm)))+" km away") + "\n\n")

	switch {
	case moon.AlwaysUp:
		b.WriteString(rowStyle.Render("Above the horizon all day") + "\n")
	case moon.AlwaysDown:
		b.WriteString(dimStyle.Render("Below the horizon all day") + "\n")
	default:
		b.WriteString(m.renderMoonEvent("Rise", moon.Rise))
		b.WriteString(m.renderMoonEvent("Set", moon.Set))
		b.WriteString(m.renderMoonEvent("Transit", moon.Transit))
		if moon.TransitInvert != nil {
			b.WriteString(m.renderMoonEvent("Transit 2", moon.TransitInvert))
		}
	}

	if len(m.illum.NextPhases) > 0 {
		b.WriteString("\n" + headerStyle.Render("Next phases") + "\n")
		for _, ev := range m.illum.NextPhases {
			line := fmt.Sprintf("%s %s  %s",
				ev.Name.Emoji(),
				pad(ev.Name.String(), 13),
				humanize.Time(ev.Time))
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	return b.String()
}

func (m DashboardModel) renderMoonEvent(label string, t *time.Time) string {
	when := "—"
	if t != nil {
		when = t.UTC().Format("15:04:05")
	}
	return rowStyle.Render(fmt.Sprintf("%s %s", pad(label, 10), when)) + "\n"
}

// renderPhaseBar draws the lunation as a marker moving along a track, new
// moon at both ends, full moon in the middle.
func (m DashboardModel) renderPhaseBar(phase float64, width int) string {
	pos := int(phase * float64(width))
	if pos >= width {
		pos = width - 1
	}
	if pos < 0 {
		pos = 0
	}

	track := []rune(strings.Repeat("·", width))
	track[width/2] = '○'
	track[pos] = '●'

	return dimStyle.Render("[") + accentStyle.Render(string(track)) + dimStyle.Render("]")
}

func (m DashboardModel) renderLivePanel() string {
	if m.sunPos == nil || m.moonPos == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n" + headerStyle.Render("Now") + "\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("Sun   az %6.1f°  alt %6.1f°",
		m.sunPos.AzimuthDegrees, m.sunPos.AltitudeDegrees)) + "\n")
	b.WriteString(rowStyle.Render(fmt.Sprintf("Moon  az %6.1f°  alt %6.1f°",
		m.moonPos.AzimuthDegrees, m.moonPos.AltitudeDegrees)) + "\n")
	return b.String()
}
