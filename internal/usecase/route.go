package usecase

import (
	"math"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// BuildRoute orders the selected locations with a greedy nearest-neighbor walk
// under a total-distance budget, then partitions the ordered route into trip
// days. This is a single-pass heuristic with irrevocable commits, not a TSP
// solve: no backtracking, no lookahead, no attempt to pick the best start.
//
// The walk seeds the route with the first selected location unconditionally.
// While unvisited locations remain and the accumulated distance is below
// maxDistancePerDayKm × tripDurationDays, it scans the unvisited set in slice
// order and picks the strictly closest one with a known distance to the
// current position (ties go to the first encountered; unknown pairs never
// compete because only a found distance can lower the +Inf minimum). The walk
// stops early when no candidate is reachable, or when committing the closest
// candidate would push the total over the budget; dropped locations are not an
// error.
//
// Day assignment is a post-processing step: with perDay =
// ceil(routeLength/tripDurationDays), position idx lands on day idx/perDay + 1.
// Entries whose computed day exceeds the trip duration are discarded.
// DistanceToNextKm records the known distance between consecutive surviving
// entries (0 for the last one and for unrecorded pairs).
func BuildRoute(selected []domain.Location, catalog domain.CatalogStore, maxDistancePerDayKm float64, tripDurationDays int) []domain.ItineraryEntry {
	if len(selected) == 0 || tripDurationDays < 1 {
		return []domain.ItineraryEntry{}
	}

	ordered := greedyOrder(selected, catalog, maxDistancePerDayKm*float64(tripDurationDays))
	entries := assignDays(ordered, tripDurationDays)
	fillDistances(entries, catalog)
	return entries
}

// greedyOrder performs the nearest-neighbor walk under totalBudgetKm.
func greedyOrder(selected []domain.Location, catalog domain.CatalogStore, totalBudgetKm float64) []domain.Location {
	ordered := []domain.Location{selected[0]}
	unvisited := make([]domain.Location, len(selected)-1)
	copy(unvisited, selected[1:])

	current := selected[0]
	accumulated := 0.0

	for len(unvisited) > 0 && accumulated < totalBudgetKm {
		closestIdx := -1
		minDistance := math.Inf(1)

		for idx, candidate := range unvisited {
			d, known := catalog.Distance(current.PlaceID, candidate.PlaceID)
			if known && d < minDistance {
				minDistance = d
				closestIdx = idx
			}
		}

		if closestIdx < 0 {
			// Nothing reachable from here; the rest is dropped.
			break
		}
		if accumulated+minDistance > totalBudgetKm {
			break
		}

		accumulated += minDistance
		current = unvisited[closestIdx]
		ordered = append(ordered, current)
		unvisited = append(unvisited[:closestIdx], unvisited[closestIdx+1:]...)
	}

	return ordered
}

// assignDays buckets the ordered route into 1-based trip days, dropping
// positions that round past the last day.
func assignDays(ordered []domain.Location, tripDurationDays int) []domain.ItineraryEntry {
	if len(ordered) == 0 {
		return []domain.ItineraryEntry{}
	}

	perDay := int(math.Ceil(float64(len(ordered)) / float64(tripDurationDays)))

	entries := make([]domain.ItineraryEntry, 0, len(ordered))
	for idx, loc := range ordered {
		day := idx/perDay + 1
		if day > tripDurationDays {
			continue
		}
		entries = append(entries, domain.ItineraryEntry{Location: loc, Day: day})
	}
	return entries
}

// fillDistances records the distance to the following entry on each stop.
func fillDistances(entries []domain.ItineraryEntry, catalog domain.CatalogStore) {
	for i := range entries {
		if i == len(entries)-1 {
			break
		}
		if d, known := catalog.Distance(entries[i].Location.PlaceID, entries[i+1].Location.PlaceID); known {
			entries[i].DistanceToNextKm = d
		}
	}
}
