package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// routeTestCatalog builds a real catalog from the given locations and edges.
func routeTestCatalog(t *testing.T, locations []domain.Location, edges []domain.DistanceEdge) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog(locations, edges)
	require.NoError(t, err)
	return catalog
}

// routeTestLocations returns four locations used across route tests.
func routeTestLocations() []domain.Location {
	return []domain.Location{
		{PlaceID: 1, Name: "Colombo", Types: []string{"Urban"}, Rating: 4.0},
		{PlaceID: 2, Name: "Bentota", Types: []string{"Beach"}, Rating: 4.5},
		{PlaceID: 3, Name: "Kandy", Types: []string{"Cultural"}, Rating: 4.8},
		{PlaceID: 4, Name: "Ella", Types: []string{"Nature"}, Rating: 4.7},
	}
}

// routeIDs extracts place IDs in route order.
func routeIDs(entries []domain.ItineraryEntry) []int {
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.Location.PlaceID)
	}
	return ids
}

func TestBuildRoute_Empty(t *testing.T) {
	catalog := routeTestCatalog(t, routeTestLocations(), nil)
	assert.Empty(t, BuildRoute(nil, catalog, 300, 3))
}

func TestBuildRoute_ZeroDuration(t *testing.T) {
	catalog := routeTestCatalog(t, routeTestLocations(), nil)
	assert.Empty(t, BuildRoute(routeTestLocations(), catalog, 300, 0))
}

func TestBuildRoute_GreedyNearestNeighbor(t *testing.T) {
	locations := routeTestLocations()
	catalog := routeTestCatalog(t, locations, []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 65},
		{FromID: 1, ToID: 3, DistanceKm: 115},
		{FromID: 2, ToID: 3, DistanceKm: 150},
		{FromID: 2, ToID: 4, DistanceKm: 210},
		{FromID: 3, ToID: 4, DistanceKm: 140},
		{FromID: 1, ToID: 4, DistanceKm: 200},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	// From Colombo the closest is Bentota (65), then Kandy (150), then Ella (140).
	assert.Equal(t, []int{1, 2, 3, 4}, routeIDs(entries))
}

func TestBuildRoute_SeedsWithFirstSelected(t *testing.T) {
	// Ella first in the selection: it anchors the route even though Colombo
	// would be a better hub.
	locations := []domain.Location{
		{PlaceID: 4, Name: "Ella", Types: []string{"Nature"}, Rating: 4.7},
		{PlaceID: 1, Name: "Colombo", Types: []string{"Urban"}, Rating: 4.0},
		{PlaceID: 2, Name: "Bentota", Types: []string{"Beach"}, Rating: 4.5},
	}
	catalog := routeTestCatalog(t, locations, []domain.DistanceEdge{
		{FromID: 4, ToID: 1, DistanceKm: 200},
		{FromID: 4, ToID: 2, DistanceKm: 210},
		{FromID: 1, ToID: 2, DistanceKm: 65},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	assert.Equal(t, []int{4, 1, 2}, routeIDs(entries))
}

func TestBuildRoute_StopsOnBudgetOverflow(t *testing.T) {
	locations := routeTestLocations()[:3]
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 65},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	})

	// Budget 100 km total: Bentota fits (65), Kandy would push the total to
	// 215 and is not committed.
	entries := BuildRoute(locations, catalog, 50, 2)

	assert.Equal(t, []int{1, 2}, routeIDs(entries))
}

func TestBuildRoute_StopsWhenNothingReachable(t *testing.T) {
	locations := routeTestLocations()[:3]
	// No recorded distances at all: the walk cannot leave the seed.
	catalog := routeTestCatalog(t, routeTestLocations(), nil)

	entries := BuildRoute(locations, catalog, 300, 3)

	assert.Equal(t, []int{1}, routeIDs(entries))
}

func TestBuildRoute_UnknownPairNeverCompetes(t *testing.T) {
	locations := routeTestLocations()[:3]
	// Only Colombo-Kandy is recorded; Bentota is unreachable and dropped.
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 3, DistanceKm: 115},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	assert.Equal(t, []int{1, 3}, routeIDs(entries))
}

func TestBuildRoute_TieGoesToFirstEncountered(t *testing.T) {
	locations := routeTestLocations()[:3]
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 100},
		{FromID: 1, ToID: 3, DistanceKm: 100},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	// Bentota precedes Kandy in the unvisited scan, so it wins the tie.
	assert.Equal(t, []int{1, 2, 3}, routeIDs(entries))
}

func TestBuildRoute_DayAssignment(t *testing.T) {
	locations := routeTestLocations()[:3]
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 65},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	// Three stops across two days: ceil(3/2) = 2 per day.
	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Day)
	assert.Equal(t, 1, entries[1].Day)
	assert.Equal(t, 2, entries[2].Day)
}

func TestBuildRoute_SingleLocationSingleDay(t *testing.T) {
	locations := routeTestLocations()[:1]
	catalog := routeTestCatalog(t, routeTestLocations(), nil)

	entries := BuildRoute(locations, catalog, 150, 5)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Day)
	assert.Equal(t, float64(0), entries[0].DistanceToNextKm)
}

func TestBuildRoute_DistanceToNext(t *testing.T) {
	locations := routeTestLocations()[:3]
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 65},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	})

	entries := BuildRoute(locations, catalog, 300, 2)

	require.Len(t, entries, 3)
	assert.InDelta(t, 65, entries[0].DistanceToNextKm, 1e-9)
	assert.InDelta(t, 150, entries[1].DistanceToNextKm, 1e-9)
	assert.Equal(t, float64(0), entries[2].DistanceToNextKm, "last stop has no next leg")
}

func TestBuildRoute_BudgetScalesWithDuration(t *testing.T) {
	locations := routeTestLocations()[:3]
	catalog := routeTestCatalog(t, routeTestLocations(), []domain.DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 65},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	})

	// 80 km/day over one day cuts the route short; over three days the same
	// pace covers everything.
	short := BuildRoute(locations, catalog, 80, 1)
	long := BuildRoute(locations, catalog, 80, 3)

	assert.Equal(t, []int{1, 2}, routeIDs(short))
	assert.Equal(t, []int{1, 2, 3}, routeIDs(long))
}
