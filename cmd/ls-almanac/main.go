// Command ls-almanac is a terminal almanac: sun and moon rise, set, twilight
// and phase times for an observer location.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"

	almanac "github.com/litescript/ls-almanac"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/report"
	"github.com/litescript/ls-almanac/internal/ui"
)

// Config holds observer defaults, overridable via LS_ALMANAC_* environment
// variables and then by flags.
type Config struct {
	Latitude  float64 `envconfig:"LAT" default:"50.45"`
	Longitude float64 `envconfig:"LNG" default:"30.52"`
	HeightM   float64 `envconfig:"HEIGHT" default:"0"`
}

// CLI flags for headless mode
var (
	summaryMode   bool
	moonMode      bool
	jsonPath      string
	watchInterval time.Duration
)

func main() {
	var cfg Config
	if err := envconfig.Process("ls_almanac", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: bad environment config: %v\n", err)
		os.Exit(1)
	}

	lat := flag.Float64("lat", cfg.Latitude, "Observer latitude in degrees")
	lng := flag.Float64("lng", cfg.Longitude, "Observer longitude in degrees")
	height := flag.Float64("height", cfg.HeightM, "Observer height above the horizon in meters")
	dateStr := flag.String("date", "", "Civil day to compute (YYYY-MM-DD, default today)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print a text almanac table instead of the TUI")
	flag.BoolVar(&moonMode, "moon", false, "Print the moon phase block instead of the TUI")
	flag.StringVar(&jsonPath, "json", "", "Export the day's almanac as JSON to a file (use - for stdout)")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat headless output at interval (e.g., 1m)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	day := time.Now().UTC()
	if *dateStr != "" {
		parsed, err := time.Parse("2006-01-02", *dateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -date %q: %v\n", *dateStr, err)
			os.Exit(1)
		}
		day = parsed
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	reg := almanac.NewRegistry()

	headless := summaryMode || moonMode || jsonPath != ""
	if headless {
		runHeadless(ctx, reg, day, *lat, *lng, *height, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal; use -summary, -moon or -json")
		os.Exit(1)
	}

	model := ui.New(reg, *lat, *lng, *height, day)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles all headless modes without starting the TUI.
func runHeadless(ctx context.Context, reg *almanac.Registry, day time.Time, lat, lng, height float64, logger *logging.Logger) {
	log := logger.With("headless")

	outputOnce := func() error {
		start := time.Now()
		snap, err := report.BuildDaySnapshot(reg, day, lat, lng, height)
		if err != nil {
			return err
		}
		log.Debug("computed day almanac in %v", time.Since(start))

		if jsonPath != "" {
			if jsonPath == "-" {
				if err := snap.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(jsonPath)
				if err != nil {
					return fmt.Errorf("create JSON file: %w", err)
				}
				defer f.Close()
				if err := snap.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
			}
		}

		if summaryMode {
			report.WriteSummaryTable(os.Stdout, snap)
		}

		if moonMode {
			writeMoonBlock(day)
		}

		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Watch mode: repeat at interval, tracking the current day.
	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			day = time.Now().UTC()
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}

// writeMoonBlock prints the phase summary for a day.
func writeMoonBlock(day time.Time) {
	ill := almanac.GetMoonIllumination(day)

	fmt.Printf("%s %s, %.0f%% illuminated\n", ill.Phase.Emoji(), ill.Phase, ill.Fraction*100)
	for _, ev := range ill.NextPhases {
		fmt.Printf("  %s %-13s %s (%s)\n",
			ev.Name.Emoji(), ev.Name,
			ev.Time.UTC().Format("2006-01-02 15:04"),
			humanize.Time(ev.Time))
	}
}
