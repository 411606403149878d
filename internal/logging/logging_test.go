package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"Warn", LevelWarn},
		{"ERROR", LevelError},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered message: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "also shown") {
		t.Errorf("output missing expected messages: %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	l.With("compute").Info("done in %dms", 12)

	out := buf.String()
	if !strings.Contains(out, "compute: done in 12ms") {
		t.Errorf("prefixed line missing, got %q", out)
	}

	// The parent keeps logging unprefixed.
	buf.Reset()
	l.Info("plain")
	if strings.Contains(buf.String(), "compute") {
		t.Errorf("parent logger should not carry the child prefix: %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing should happen")
}
