package almanac

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSunTimeByAzimuthGolden(t *testing.T) {
	// Due south from Kyiv, close to local solar noon.
	got, err := GetSunTimeByAzimuth(time.Date(2013, 3, 5, 0, 0, 0, 0, time.UTC), 50.5, 30.5, 180, true)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Date(2013, 3, 5, 10, 10, 18, 0, time.UTC), got, 5*time.Second)
}

func TestGetSunTimeByAzimuthRoundTrip(t *testing.T) {
	targets := []float64{90, 135, 180, 225}
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	for _, target := range targets {
		got, err := GetSunTimeByAzimuth(day, 40, -74, target, true)
		require.NoError(t, err)

		pos, err := GetPosition(got, 40, -74)
		require.NoError(t, err)
		assert.InDelta(t, target, pos.AzimuthDegrees, 0.01, "azimuth %v", target)
	}
}

func TestGetSunTimeByAzimuthRadians(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	deg, err := GetSunTimeByAzimuth(day, 40, -74, 180, true)
	require.NoError(t, err)
	rad, err := GetSunTimeByAzimuth(day, 40, -74, math.Pi, false)
	require.NoError(t, err)

	assert.WithinDuration(t, deg, rad, time.Millisecond)
}

func TestGetSunTimeByAzimuthInvalidInput(t *testing.T) {
	_, err := GetSunTimeByAzimuth(time.Now(), math.NaN(), 0, 180, true)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = GetSunTimeByAzimuth(time.Now(), 40, -74, math.NaN(), true)
	assert.ErrorIs(t, err, ErrInvalidAzimuth)
}

func TestGetSolarTimeGolden(t *testing.T) {
	// At civil noon UTC the apparent solar clock at 30.5E runs almost two
	// hours ahead.
	got, err := GetSolarTime(time.Date(2013, 3, 5, 12, 0, 0, 0, time.UTC), 30.5, 0)
	require.NoError(t, err)

	assert.WithinDuration(t, time.Date(2013, 3, 5, 13, 49, 2, 842000000, time.UTC), got, time.Second)
}

func TestGetSolarTimeOffsetInvariant(t *testing.T) {
	// The offset parameter only picks which civil day's noon anchors the
	// solve; away from day boundaries it must not move the result.
	at := time.Date(2013, 3, 5, 12, 0, 0, 0, time.UTC)

	utc, err := GetSolarTime(at, 30.5, 0)
	require.NoError(t, err)
	shifted, err := GetSolarTime(at, 30.5, 120)
	require.NoError(t, err)
	negative, err := GetSolarTime(at, 30.5, -180)
	require.NoError(t, err)

	assert.True(t, utc.Equal(shifted), "offset 120 moved the result: %v vs %v", utc, shifted)
	assert.True(t, utc.Equal(negative), "offset -180 moved the result: %v vs %v", utc, negative)
}

func TestGetSolarTimeGreenwich(t *testing.T) {
	// On the prime meridian solar time differs from UTC only by the equation
	// of time, at most about 17 minutes.
	got, err := GetSolarTime(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), 0, 0)
	require.NoError(t, err)

	diff := got.Sub(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	assert.Less(t, diff.Abs(), 18*time.Minute)
}

func TestGetSolarTimeInvalidInput(t *testing.T) {
	_, err := GetSolarTime(time.Now(), math.NaN(), 0)
	assert.ErrorIs(t, err, ErrInvalidLongitude)
}
