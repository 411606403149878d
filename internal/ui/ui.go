// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	almanac "github.com/litescript/ls-almanac"
	"github.com/litescript/ls-almanac/internal/report"
	"github.com/litescript/ls-almanac/internal/version"
)

// Msg types for Bubble Tea
type (
	// TickMsg triggers the periodic refresh of the live readouts.
	TickMsg time.Time
)

// Model is the root Bubble Tea model: a single-day almanac dashboard.
type Model struct {
	// Dependencies
	registry *almanac.Registry

	// Observer
	lat     float64
	lng     float64
	heightM float64

	// UI state
	width  int
	height int
	ready  bool
	day    time.Time // midnight UTC of the displayed day
	now    time.Time

	// Computed for the displayed day
	snapshot *report.DaySnapshot
	illum    almanac.Illumination
	compErr  error

	dashboard DashboardModel
}

// New creates the root UI model for an observer location.
func New(reg *almanac.Registry, lat, lng, heightM float64, day time.Time) Model {
	m := Model{
		registry:  reg,
		lat:       lat,
		lng:       lng,
		heightM:   heightM,
		day:       midnightUTC(day),
		now:       time.Now().UTC(),
		dashboard: NewDashboardModel(),
	}
	m.recompute()
	return m
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (m *Model) recompute() {
	m.snapshot, m.compErr = report.BuildDaySnapshot(m.registry, m.day, m.lat, m.lng, m.heightM)
	m.illum = almanac.GetMoonIllumination(m.day)
	m.dashboard = m.dashboard.UpdateData(m.snapshot, m.illum, m.compErr)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m.day = m.day.AddDate(0, 0, -1)
			m.recompute()
		case "right", "l":
			m.day = m.day.AddDate(0, 0, 1)
			m.recompute()
		case "t":
			m.day = midnightUTC(time.Now())
			m.recompute()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.dashboard = m.dashboard.SetSize(msg.Width, msg.Height-6)

	case TickMsg:
		m.now = time.Time(msg).UTC()
		m.dashboard = m.dashboard.SetNow(m.now, m.lat, m.lng)
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.renderHeader() + "\n" + m.dashboard.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("ls-almanac")
	sub := dimStyle.Render(fmt.Sprintf("  v%s | %s | %.4f, %.4f",
		version.Version, m.day.Format("Mon 2006-01-02"), m.lat, m.lng))
	return "\n  " + title + sub + "\n"
}

func (m Model) renderFooter() string {
	help := dimStyle.Render("←/→: change day | t: today | q: quit")
	clock := dimStyle.Render(m.now.Format("15:04:05") + " UTC")
	return "  " + clock + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Styles shared across the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pastRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
