package usecase

import (
	"sort"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// interestBoost multiplies the score of locations the traveler named as a
// specific interest.
const interestBoost = 1.5

// SelectLocations picks the final candidate set for the itinerary.
//
// Rules, in order:
//  1. Locations named in excludedNames are removed first. Exclusion is
//     authoritative: a name appearing in both lists never survives, because
//     mandatory matching runs on the already-filtered pool.
//  2. The remaining locations are partitioned into mandatory (name in
//     mandatoryNames, kept in catalog order, never scored or reordered) and
//     the pool.
//  3. Pool entries take their weighted score from scores (absent IDs score 0)
//     and are sorted descending; ties break by place ID ascending so results
//     are reproducible.
//  4. When interestIDs is non-empty, matching pool entries have their score
//     multiplied by interestBoost and the pool is re-sorted. The second sort
//     is authoritative and may reorder earlier ties.
//  5. capacity = min(|pool| + |mandatory|, maxLocations); the mandatory set
//     consumes capacity first and the top remaining pool entries fill the
//     rest.
//
// Mandatory names absent from the catalog are silently dropped. The function
// never fails: empty inputs or zero capacity degrade to a smaller or empty
// selection.
func SelectLocations(
	locations []domain.Location,
	scores map[int]float64,
	mandatoryNames []string,
	excludedNames []string,
	interestIDs []int,
	maxLocations int,
) []domain.Location {
	excluded := nameSet(excludedNames)
	mandatory := nameSet(mandatoryNames)

	var mandatorySet []domain.Location
	type poolEntry struct {
		loc   domain.Location
		score float64
	}
	var pool []poolEntry

	for _, loc := range locations {
		if _, skip := excluded[loc.Name]; skip {
			continue
		}
		if _, must := mandatory[loc.Name]; must {
			mandatorySet = append(mandatorySet, loc)
			continue
		}
		pool = append(pool, poolEntry{loc: loc, score: scores[loc.PlaceID]})
	}

	sortPool := func() {
		sort.Slice(pool, func(i, j int) bool {
			if pool[i].score != pool[j].score {
				return pool[i].score > pool[j].score
			}
			return pool[i].loc.PlaceID < pool[j].loc.PlaceID
		})
	}
	sortPool()

	if len(interestIDs) > 0 {
		interests := make(map[int]struct{}, len(interestIDs))
		for _, id := range interestIDs {
			interests[id] = struct{}{}
		}
		for i := range pool {
			if _, boost := interests[pool[i].loc.PlaceID]; boost {
				pool[i].score *= interestBoost
			}
		}
		sortPool()
	}

	capacity := len(pool) + len(mandatorySet)
	if maxLocations < capacity {
		capacity = maxLocations
	}
	remaining := capacity - len(mandatorySet)
	if remaining < 0 {
		remaining = 0
	}
	if remaining > len(pool) {
		remaining = len(pool)
	}

	selection := make([]domain.Location, 0, len(mandatorySet)+remaining)
	selection = append(selection, mandatorySet...)
	for _, entry := range pool[:remaining] {
		selection = append(selection, entry.loc)
	}
	return selection
}

// nameSet builds a lookup set from display names.
func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
