// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Moon transit disambiguation, quarter-phase search, solar time and azimuth solvers
// 0.2.0 - Extensible angle registry, deprecated-name aliases, observer height dip
// 0.1.0 - Initial release: sun/moon positions, rise/set/twilight times, TUI dashboard, headless modes
