package almanac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoonIlluminationGolden(t *testing.T) {
	ill := GetMoonIllumination(time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC))

	assert.InDelta(t, 0.4848068202456374, ill.Fraction, 1e-6)
	assert.InDelta(t, 0.7548368838538762, ill.PhaseValue, 1e-6)
	assert.InDelta(t, 1.6732942678578346, ill.BrightLimbAngle, 1e-6)
	assert.Equal(t, LastQuarter, ill.Phase)
}

func TestGetMoonIlluminationFullMoon(t *testing.T) {
	// Supermoon of 2015-09-28, 02:50 UTC.
	ill := GetMoonIllumination(time.Date(2015, 9, 28, 2, 50, 0, 0, time.UTC))

	assert.Greater(t, ill.Fraction, 0.98)
	assert.Equal(t, FullMoon, ill.Phase)
	assert.InDelta(t, 0.5, ill.PhaseValue, 0.01)
}

func TestGetMoonIlluminationNextPhases(t *testing.T) {
	ill := GetMoonIllumination(time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC))

	require.Len(t, ill.NextPhases, 4)

	for i := 1; i < len(ill.NextPhases); i++ {
		assert.True(t, ill.NextPhases[i-1].Time.Before(ill.NextPhases[i].Time),
			"phases must be in strictly increasing time order")
	}

	byValue := map[float64]PhaseEvent{}
	for _, ev := range ill.NextPhases {
		byValue[ev.Value] = ev
	}

	tests := []struct {
		value float64
		name  MoonPhaseName
		want  time.Time
	}{
		{0, NewMoon, time.Date(2013, 3, 11, 20, 34, 32, 0, time.UTC)},
		{0.25, FirstQuarter, time.Date(2013, 3, 19, 16, 0, 33, 0, time.UTC)},
		{0.5, FullMoon, time.Date(2013, 3, 27, 13, 40, 34, 0, time.UTC)},
		{0.75, LastQuarter, time.Date(2013, 4, 3, 5, 10, 34, 0, time.UTC)},
	}
	for _, tt := range tests {
		ev, ok := byValue[tt.value]
		require.True(t, ok, "quarter %v missing", tt.value)
		assert.Equal(t, tt.name, ev.Name)
		assert.WithinDuration(t, tt.want, ev.Time, 2*time.Minute)
	}
}

func TestNextQuarterImminentCrossing(t *testing.T) {
	// The true crossing can trail the mean-cycle estimate by hours. When the
	// query instant lands between the two, the search must still find the
	// imminent crossing instead of skipping a whole synodic month ahead.
	tests := []struct {
		name string
		at   time.Time
		q    float64
		want time.Time
	}{
		{
			name: "full moon two hours ahead",
			at:   time.Date(2013, 1, 27, 7, 16, 0, 0, time.UTC),
			q:    0.5,
			want: time.Date(2013, 1, 27, 9, 16, 0, 0, time.UTC),
		},
		{
			name: "last quarter later the same day",
			at:   time.Date(2013, 11, 25, 15, 0, 0, 0, time.UTC),
			q:    0.75,
			want: time.Date(2013, 11, 25, 18, 18, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextQuarter(tt.at, tt.q)
			assert.WithinDuration(t, tt.want, got, 2*time.Minute)
		})
	}
}

func TestNextQuarterAlwaysAfter(t *testing.T) {
	// Instants scattered across a cycle; every quarter search must land
	// strictly in the future, and never more than one synodic month out.
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 30; day += 3 {
		at := start.AddDate(0, 0, day)
		for _, q := range []float64{0, 0.25, 0.5, 0.75} {
			got := nextQuarter(at, q)
			assert.True(t, got.After(at), "quarter %v at %v returned %v", q, at, got)
			assert.Less(t, got.Sub(at), 30*24*time.Hour,
				"quarter %v at %v skipped a cycle: %v", q, at, got)
		}
	}
}

func TestMoonPhaseNameStrings(t *testing.T) {
	assert.Equal(t, "newMoon", NewMoon.String())
	assert.Equal(t, "waxingGibbous", WaxingGibbous.String())
	assert.Equal(t, "waningCrescent", WaningCrescent.String())
	assert.Equal(t, "🌕", FullMoon.Emoji())
	assert.Equal(t, "🌑", NewMoon.Emoji())
}

func TestPhaseBucketBoundaries(t *testing.T) {
	tests := []struct {
		phase float64
		want  MoonPhaseName
	}{
		{0, NewMoon},
		{0.03, NewMoon},
		{0.125, WaxingCrescent},
		{0.25, FirstQuarter},
		{0.5, FullMoon},
		{0.75, LastQuarter},
		{0.97, NewMoon},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, phaseBucket(tt.phase), "phase %v", tt.phase)
	}
}
