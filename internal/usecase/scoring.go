// Package usecase provides the business logic for itinerary planning: preference
// scoring, location selection, greedy route construction, and budget estimation.
package usecase

import (
	"time"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// ScoredLocation annotates a catalog location with its derived weighted score
// and season fit for a specific trip. Ephemeral: recomputed per request.
type ScoredLocation struct {
	domain.Location

	// WeightedScore aggregates rating, category preference, and season fit
	WeightedScore float64

	// SeasonSuitable records whether the trip dates overlap the location's
	// declared travel windows
	SeasonSuitable bool
}

// ScoreLocations computes the weighted desirability score for every catalog
// location under the given category preference weights and trip dates.
//
// Each of a location's category tags contributes rating × (weight/100); the
// contributions are summed across tags, so a multi-category location earns a
// share from every tag the traveler cares about. A season-suitable location
// has its summed score doubled. Unmapped categories contribute 0, never a
// negative amount.
//
// The result preserves catalog order and does not mutate the input.
func ScoreLocations(locations []domain.Location, preferences map[string]float64, start, end time.Time) []ScoredLocation {
	result := make([]ScoredLocation, 0, len(locations))

	for _, loc := range locations {
		var score float64
		for _, tag := range loc.Types {
			score += loc.Rating * (preferences[tag] / 100)
		}

		suitable := domain.SeasonSuitable(loc.Seasons, start, end)
		if suitable {
			score *= 2
		}

		result = append(result, ScoredLocation{
			Location:       loc,
			WeightedScore:  score,
			SeasonSuitable: suitable,
		})
	}

	return result
}

// ScoresByID collapses scored locations into a place-ID keyed score map.
func ScoresByID(scored []ScoredLocation) map[int]float64 {
	scores := make(map[int]float64, len(scored))
	for _, s := range scored {
		scores[s.PlaceID] = s.WeightedScore
	}
	return scores
}
