package almanac

import (
	"regexp"
	"sync"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Threshold is a named pair of rise/set events at a fixed Sun altitude.
// RisePos and SetPos are display ordering hints used when rendering a full
// day of events; they do not affect solving.
type Threshold struct {
	AngleDeg float64
	RiseName string
	SetName  string
	RisePos  int
	SetPos   int
}

// Alias maps a deprecated event name onto a registered rise/set name.
type Alias struct {
	Name          string
	CanonicalName string
}

// Event names must be identifier-shaped: no leading digit, then letters,
// digits, underscore or dollar.
var identRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Registry is the ordered, append-only collection of altitude thresholds and
// deprecated aliases consulted by the event solvers. Registration and
// iteration may happen from different goroutines, so both sides go through
// the mutex; a single-threaded caller pays only uncontended lock costs.
type Registry struct {
	mu         sync.RWMutex
	thresholds []Threshold
	aliases    []Alias
}

// builtinThresholds are the ten standard twilight and horizon bands, ordered
// by how the corresponding events unfold across a day.
var builtinThresholds = []Threshold{
	{6, "goldenHourDawnEnd", "goldenHourDuskStart", 10, 14},
	{-0.3, "sunriseEnd", "sunsetStart", 9, 15},
	{-0.833, "sunriseStart", "sunsetEnd", 8, 16},
	{-1, "goldenHourDawnStart", "goldenHourDuskEnd", 7, 17},
	{-4, "blueHourDawnEnd", "blueHourDuskStart", 6, 18},
	{-6, "civilDawn", "civilDusk", 5, 19},
	{-8, "blueHourDawnStart", "blueHourDuskEnd", 4, 20},
	{-12, "nauticalDawn", "nauticalDusk", 3, 21},
	{-15, "amateurDawn", "amateurDusk", 2, 22},
	{-18, "astronomicalDawn", "astronomicalDusk", 1, 23},
}

// builtinAliases are the historical event names kept for callers of older
// releases. Each maps onto one of the built-in rise/set names.
var builtinAliases = []Alias{
	{"dawn", "civilDawn"},
	{"dusk", "civilDusk"},
	{"nightEnd", "astronomicalDawn"},
	{"night", "astronomicalDusk"},
	{"nightStart", "astronomicalDusk"},
	{"goldenHour", "goldenHourDuskStart"},
	{"goldenHourEnd", "goldenHourDawnEnd"},
	{"sunrise", "sunriseStart"},
	{"sunset", "sunsetEnd"},
}

// NewRegistry returns a registry seeded with the built-in thresholds and
// deprecated aliases.
func NewRegistry() *Registry {
	r := &Registry{
		thresholds: make([]Threshold, len(builtinThresholds)),
		aliases:    make([]Alias, len(builtinAliases)),
	}
	copy(r.thresholds, builtinThresholds)
	copy(r.aliases, builtinAliases)
	return r
}

// std is the process-wide registry behind the package-level functions.
var std = NewRegistry()

// Default returns the shared registry used by the package-level functions.
func Default() *Registry {
	return std
}

// AddTime registers a new rise/set threshold. The angle is in degrees unless
// isDegrees is false. Both names must be identifier-shaped and unused by any
// registered threshold; on any validation failure nothing is changed and
// false is returned. A successful registration removes any alias whose name
// is shadowed by the new rise or set name: the canonical registration wins.
func (r *Registry) AddTime(angle float64, riseName, setName string, risePos, setPos int, isDegrees bool) bool {
	if !identRe.MatchString(riseName) || !identRe.MatchString(setName) {
		return false
	}
	if riseName == setName {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameInUse(riseName) || r.nameInUse(setName) {
		return false
	}

	if !isDegrees {
		angle = astro.Deg(angle)
	}
	r.thresholds = append(r.thresholds, Threshold{
		AngleDeg: angle,
		RiseName: riseName,
		SetName:  setName,
		RisePos:  risePos,
		SetPos:   setPos,
	})

	// Prune shadowed aliases.
	kept := r.aliases[:0]
	for _, a := range r.aliases {
		if a.Name != riseName && a.Name != setName {
			kept = append(kept, a)
		}
	}
	r.aliases = kept

	return true
}

// AddDeprecatedTimeName registers an alias for an existing rise/set name.
// The alias must be identifier-shaped and must not collide with a registered
// rise/set name; the canonical name must already be registered. Duplicate
// aliases are permitted and resolution is last-registered-wins.
func (r *Registry) AddDeprecatedTimeName(aliasName, canonicalName string) bool {
	if !identRe.MatchString(aliasName) {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameInUse(aliasName) {
		return false
	}
	if !r.nameInUse(canonicalName) {
		return false
	}

	r.aliases = append(r.aliases, Alias{Name: aliasName, CanonicalName: canonicalName})
	return true
}

// nameInUse reports whether name is a registered rise or set name.
// Callers must hold the mutex.
func (r *Registry) nameInUse(name string) bool {
	for _, t := range r.thresholds {
		if t.RiseName == name || t.SetName == name {
			return true
		}
	}
	return false
}

// Thresholds returns a snapshot copy of the registered thresholds in
// registration order.
func (r *Registry) Thresholds() []Threshold {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Threshold, len(r.thresholds))
	copy(out, r.thresholds)
	return out
}

// Aliases returns a snapshot copy of the registered aliases in registration
// order.
func (r *Registry) Aliases() []Alias {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Alias, len(r.aliases))
	copy(out, r.aliases)
	return out
}

// ResolveAlias returns the canonical name for an alias. When the same alias
// was registered more than once the most recent registration wins.
func (r *Registry) ResolveAlias(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.aliases) - 1; i >= 0; i-- {
		if r.aliases[i].Name == name {
			return r.aliases[i].CanonicalName, true
		}
	}
	return "", false
}

// AddTime registers a threshold on the default registry.
func AddTime(angle float64, riseName, setName string, risePos, setPos int, isDegrees bool) bool {
	return std.AddTime(angle, riseName, setName, risePos, setPos, isDegrees)
}

// AddDeprecatedTimeName registers an alias on the default registry.
func AddDeprecatedTimeName(aliasName, canonicalName string) bool {
	return std.AddDeprecatedTimeName(aliasName, canonicalName)
}
