package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoonTimesGolden(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		wantRise time.Time
		wantSet  time.Time
	}{
		{
			name:     "2013-03-05 Kyiv",
			day:      time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC),
			wantRise: time.Date(2013, 3, 5, 0, 2, 13, 0, time.UTC),
			wantSet:  time.Date(2013, 3, 5, 8, 35, 19, 0, time.UTC),
		},
		{
			name:     "2013-03-06 Kyiv",
			day:      time.Date(2013, 3, 6, 0, 0, 0, 0, time.UTC),
			wantRise: time.Date(2013, 3, 6, 1, 0, 42, 0, time.UTC),
			wantSet:  time.Date(2013, 3, 6, 9, 41, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mt, err := GetMoonTimes(tt.day, 50.5, 30.5, true)
			require.NoError(t, err)

			require.True(t, mt.Rise.Valid)
			require.True(t, mt.Set.Valid)
			assert.WithinDuration(t, tt.wantRise, mt.Rise.Time, 5*time.Second)
			assert.WithinDuration(t, tt.wantSet, mt.Set.Time, 5*time.Second)
			assert.False(t, mt.AlwaysUp)
			assert.False(t, mt.AlwaysDown)
		})
	}
}

func TestGetMoonTimesRiseMissing(t *testing.T) {
	// Moonrise drifts past midnight around this date: the day has a set but
	// no rise. That is normal, not an error.
	mt, err := GetMoonTimes(time.Date(2013, 3, 4, 0, 0, 0, 0, time.UTC), 50.5, 30.5, true)
	require.NoError(t, err)

	assert.False(t, mt.Rise.Valid)
	assert.True(t, mt.Rise.Time.IsZero())
	require.True(t, mt.Set.Valid)
	assert.WithinDuration(t, time.Date(2013, 3, 4, 7, 39, 3, 0, time.UTC), mt.Set.Time, 5*time.Second)
	assert.False(t, mt.AlwaysUp)
	assert.False(t, mt.AlwaysDown)
}

func TestGetMoonTimesAlwaysUp(t *testing.T) {
	mt, err := GetMoonTimes(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC), 78, 16, true)
	require.NoError(t, err)

	assert.False(t, mt.Rise.Valid)
	assert.False(t, mt.Set.Valid)
	assert.True(t, mt.AlwaysUp)
	assert.False(t, mt.AlwaysDown)
}

func TestGetMoonTimesAlwaysDown(t *testing.T) {
	mt, err := GetMoonTimes(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), 78, 16, true)
	require.NoError(t, err)

	assert.False(t, mt.Rise.Valid)
	assert.False(t, mt.Set.Valid)
	assert.False(t, mt.AlwaysUp)
	assert.True(t, mt.AlwaysDown)
}

func TestGetMoonTimesEventShape(t *testing.T) {
	mt, err := GetMoonTimes(time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC), 50.5, 30.5, true)
	require.NoError(t, err)

	assert.Equal(t, "moonrise", mt.Rise.Name)
	assert.Equal(t, "moonset", mt.Set.Name)
	assert.Equal(t, PositionRise, mt.Rise.Position)
	assert.Equal(t, PositionSet, mt.Set.Position)
	assert.Greater(t, mt.Rise.JulianDate, 2456000.0)
}

func TestGetMoonTimesInvalidInput(t *testing.T) {
	_, err := GetMoonTimes(time.Now(), math.NaN(), 0, true)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}
