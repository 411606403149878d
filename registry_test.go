package almanac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistrySeeds(t *testing.T) {
	r := NewRegistry()

	ths := r.Thresholds()
	require.Len(t, ths, 10)

	// The standard horizon band must be present.
	var found bool
	for _, th := range ths {
		if th.RiseName == "sunriseStart" && th.SetName == "sunsetEnd" {
			assert.InDelta(t, -0.833, th.AngleDeg, 1e-9)
			found = true
		}
	}
	assert.True(t, found, "sunriseStart/sunsetEnd threshold missing")

	canonical, ok := r.ResolveAlias("sunrise")
	require.True(t, ok)
	assert.Equal(t, "sunriseStart", canonical)
}

func TestAddTime(t *testing.T) {
	r := NewRegistry()

	ok := r.AddTime(-5.5, "customDawn", "customDusk", 0, 0, true)
	require.True(t, ok)

	ths := r.Thresholds()
	last := ths[len(ths)-1]
	assert.Equal(t, "customDawn", last.RiseName)
	assert.InDelta(t, -5.5, last.AngleDeg, 1e-9)
}

func TestAddTimeRadians(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.AddTime(-0.10471975511965977, "radDawn", "radDusk", 0, 0, false))

	ths := r.Thresholds()
	assert.InDelta(t, -6.0, ths[len(ths)-1].AngleDeg, 1e-9)
}

func TestAddTimeRejections(t *testing.T) {
	tests := []struct {
		name     string
		riseName string
		setName  string
	}{
		{"empty rise name", "", "validSet"},
		{"empty set name", "validRise", ""},
		{"leading digit", "9dawn", "validSet"},
		{"whitespace", "my dawn", "validSet"},
		{"rise collides with builtin rise", "civilDawn", "freshSet"},
		{"rise collides with builtin set", "civilDusk", "freshSet"},
		{"set collides with builtin", "freshRise", "nauticalDawn"},
		{"rise equals set", "sameName", "sameName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			before := len(r.Thresholds())

			assert.False(t, r.AddTime(1, tt.riseName, tt.setName, 0, 0, true))
			assert.Len(t, r.Thresholds(), before, "failed registration must not change the registry")
		})
	}
}

func TestAddDeprecatedTimeName(t *testing.T) {
	r := NewRegistry()

	assert.True(t, r.AddDeprecatedTimeName("oldCivilDawn", "civilDawn"))

	canonical, ok := r.ResolveAlias("oldCivilDawn")
	require.True(t, ok)
	assert.Equal(t, "civilDawn", canonical)
}

func TestAddDeprecatedTimeNameRejections(t *testing.T) {
	r := NewRegistry()

	// Unknown canonical name.
	assert.False(t, r.AddDeprecatedTimeName("whatever", "noSuchEvent"))
	// Alias colliding with a registered rise/set name.
	assert.False(t, r.AddDeprecatedTimeName("civilDusk", "civilDawn"))
	// Malformed alias.
	assert.False(t, r.AddDeprecatedTimeName("not a name", "civilDawn"))
}

func TestAliasLastRegisteredWins(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.AddDeprecatedTimeName("twilight", "civilDusk"))
	require.True(t, r.AddDeprecatedTimeName("twilight", "nauticalDusk"))

	canonical, ok := r.ResolveAlias("twilight")
	require.True(t, ok)
	assert.Equal(t, "nauticalDusk", canonical)
}

func TestAddTimePrunesShadowedAlias(t *testing.T) {
	r := NewRegistry()

	require.True(t, r.AddDeprecatedTimeName("myDawn", "civilDawn"))

	// Registering a real threshold under the alias name retires the alias.
	require.True(t, r.AddTime(-7, "myDawn", "myDusk", 0, 0, true))

	_, ok := r.ResolveAlias("myDawn")
	assert.False(t, ok, "alias should have been pruned by the canonical registration")
}

func TestDefaultRegistryWrappers(t *testing.T) {
	// The package-level functions operate on the shared default registry;
	// use throwaway names so other tests are unaffected.
	require.True(t, AddTime(-9.5, "wrapperRise", "wrapperSet", 0, 0, true))
	assert.False(t, AddTime(-9.5, "wrapperRise", "wrapperSet", 0, 0, true))

	require.True(t, AddDeprecatedTimeName("wrapperOld", "wrapperRise"))
	canonical, ok := Default().ResolveAlias("wrapperOld")
	require.True(t, ok)
	assert.Equal(t, "wrapperRise", canonical)
}

func TestRegistryConcurrentReadsDuringRegistration(t *testing.T) {
	r := NewRegistry()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			for range r.Thresholds() {
			}
			r.ResolveAlias("sunrise")
		}
	}()

	names := []struct{ rise, set string }{
		{"extraRiseA", "extraSetA"},
		{"extraRiseB", "extraSetB"},
		{"extraRiseC", "extraSetC"},
	}
	for _, n := range names {
		r.AddTime(2, n.rise, n.set, 0, 0, true)
	}
	<-done

	assert.Len(t, r.Thresholds(), 13)
}
