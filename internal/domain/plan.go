package domain

// ItineraryEntry is one scheduled stop in the computed route.
// Entries are request-scoped: created by the route builder, consumed by the
// budget estimator and the output formatting, then discarded.
type ItineraryEntry struct {
	// Location is the catalog location placed at this position
	Location Location `json:"location"`

	// Day is the 1-based trip day the stop is assigned to.
	// Always within [1, trip duration].
	Day int `json:"day"`

	// DistanceToNextKm is the known distance to the following entry.
	// Zero for the last entry and for pairs with no recorded distance.
	DistanceToNextKm float64 `json:"distance_to_next_km"`
}

// BudgetBreakdown itemizes the per-person actual budget.
// The component fields carry the raw estimates; Total carries the pace-adjusted
// figure, so the components do not sum to Total when the pace multiplier is
// above 1. The asymmetry is part of the published output contract.
type BudgetBreakdown struct {
	// Transportation is the fuel estimate over the realized route, shared
	// across the group
	Transportation float64 `json:"transportation"`

	// Accommodation is the per-person lodging estimate over the trip
	Accommodation float64 `json:"accommodation"`

	// Food is the per-person meal estimate over the trip
	Food float64 `json:"food"`

	// Activities is the per-person entry-fee estimate over the itinerary
	Activities float64 `json:"activities"`

	// Total is the pace-adjusted per-person actual budget
	Total float64 `json:"total"`
}

// PlanMetadata carries information about the plan computation itself.
type PlanMetadata struct {
	// GenerationTimeMs is how long the computation took, in milliseconds
	GenerationTimeMs int64 `json:"generation_time_ms"`
}

// ItineraryPlan is the full result of one itinerary computation.
type ItineraryPlan struct {
	// TripDurationDays is the inclusive trip length
	TripDurationDays int `json:"trip_duration"`

	// Pace is the preset name the plan was computed with
	Pace string `json:"pace"`

	// NumTravelers is the group size the budgets were computed for
	NumTravelers int `json:"num_travelers"`

	// MinBudgetPerPerson is the pre-selection worst-case planning estimate
	MinBudgetPerPerson float64 `json:"min_budget_per_person"`

	// ActualBudgetPerPerson is the post-route estimate (0 for an empty route)
	ActualBudgetPerPerson float64 `json:"actual_budget_per_person"`

	// TotalGroupBudget is ActualBudgetPerPerson times NumTravelers
	TotalGroupBudget float64 `json:"total_group_budget"`

	// Itinerary is the ordered, day-assigned route
	Itinerary []ItineraryEntry `json:"itinerary"`

	// Breakdown itemizes the per-person actual budget
	Breakdown BudgetBreakdown `json:"budget_breakdown_per_person"`

	// Metadata describes the computation
	Metadata PlanMetadata `json:"metadata"`
}

// TotalLocations returns the number of scheduled stops.
func (p *ItineraryPlan) TotalLocations() int {
	return len(p.Itinerary)
}
