package usecase

import "github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"

// Budget formula constants, per person unless noted.
const (
	// fuelCostPerKm estimates transportation cost per kilometer. The resulting
	// transportation cost is shared across the whole group.
	fuelCostPerKm = 0.2

	// accommodationPerDay estimates lodging cost per trip day.
	accommodationPerDay = 50

	// foodPerDay estimates meal cost per trip day.
	foodPerDay = 30

	// activityPerLocation estimates the average entry fee per scheduled stop.
	activityPerLocation = 10
)

// MinimumBudget computes the pre-selection planning estimate per person.
// It deliberately ignores the selected route: the transportation term assumes
// the pace's full per-day distance allowance is spent every day, making this a
// worst-case figure, not a projection from the itinerary.
func MinimumBudget(pace domain.PacePreset, tripDurationDays, numTravelers int) float64 {
	transportation := (pace.DistancePerDayKm * fuelCostPerKm * float64(tripDurationDays)) / float64(numTravelers)
	other := float64(accommodationPerDay * tripDurationDays)
	return transportation + other
}

// ActualBudget computes the post-route estimate per person together with its
// component breakdown.
//
// The realized route distance is the sum of the consecutive-pair distances
// already resolved onto the entries (pairs with no recorded distance
// contribute 0). Transportation is shared across the group; accommodation,
// food, and activities are per person. The returned total applies the pace's
// budget multiplier while the breakdown components stay unmultiplied, matching
// the published output contract.
//
// An empty itinerary short-circuits to a zero budget regardless of trip
// length.
func ActualBudget(itinerary []domain.ItineraryEntry, pace domain.PacePreset, tripDurationDays, numTravelers int) (float64, domain.BudgetBreakdown) {
	if len(itinerary) == 0 {
		return 0, domain.BudgetBreakdown{}
	}

	var totalDistanceKm float64
	for _, entry := range itinerary {
		totalDistanceKm += entry.DistanceToNextKm
	}

	transportation := (totalDistanceKm * fuelCostPerKm) / float64(numTravelers)
	accommodation := float64(accommodationPerDay * tripDurationDays)
	food := float64(foodPerDay * tripDurationDays)
	activities := float64(activityPerLocation * len(itinerary))

	total := (transportation + accommodation + food + activities) * pace.BudgetMultiplier

	return total, domain.BudgetBreakdown{
		Transportation: transportation,
		Accommodation:  accommodation,
		Food:           food,
		Activities:     activities,
		Total:          total,
	}
}
