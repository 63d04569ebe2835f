package domain

import "fmt"

// Pace preset names accepted in requests.
const (
	PaceFast     = "Fast-Paced"
	PaceBalanced = "Balanced"
	PaceRelaxing = "Relaxing"

	// DefaultPace is applied when a request omits the pace field.
	DefaultPace = PaceBalanced
)

// PacePreset bundles the per-day caps and the budget buffer for one travel pace.
// Presets are compile-time constants; they do not vary with trip duration.
type PacePreset struct {
	// Name is the preset identifier as it appears in requests and responses
	Name string `json:"name"`

	// LocationsPerDay caps how many locations the itinerary may schedule per day
	LocationsPerDay int `json:"locations_per_day"`

	// DistancePerDayKm caps the total route distance budget, per trip day
	DistancePerDayKm float64 `json:"distance_per_day_km"`

	// BudgetMultiplier inflates the actual budget estimate (faster pace = more
	// activities = higher cost)
	BudgetMultiplier float64 `json:"budget_multiplier"`
}

// pacePresets is the fixed table of supported paces.
var pacePresets = map[string]PacePreset{
	PaceFast:     {Name: PaceFast, LocationsPerDay: 4, DistancePerDayKm: 500, BudgetMultiplier: 1.2},
	PaceBalanced: {Name: PaceBalanced, LocationsPerDay: 3, DistancePerDayKm: 300, BudgetMultiplier: 1.1},
	PaceRelaxing: {Name: PaceRelaxing, LocationsPerDay: 2, DistancePerDayKm: 150, BudgetMultiplier: 1.0},
}

// PaceByName resolves a preset by its request name. An unknown name is a
// configuration error, never silently defaulted.
// Returns a wrapped ErrUnknownPace if the name is not a supported preset.
func PaceByName(name string) (PacePreset, error) {
	preset, ok := pacePresets[name]
	if !ok {
		return PacePreset{}, fmt.Errorf("%w: %q is not one of: %s, %s, %s",
			ErrUnknownPace, name, PaceFast, PaceBalanced, PaceRelaxing)
	}
	return preset, nil
}

// PaceNames returns the supported preset names in a fixed order.
func PaceNames() []string {
	return []string{PaceFast, PaceBalanced, PaceRelaxing}
}
