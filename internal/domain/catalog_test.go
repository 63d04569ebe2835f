package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLocations returns a small valid catalog fixture.
func testLocations() []Location {
	return []Location{
		{PlaceID: 1, Name: "Colombo", Types: []string{"City"}, Rating: 12.8, Seasons: []SeasonTag{SeasonDecApr, SeasonJunSep}},
		{PlaceID: 2, Name: "Bentota", Types: []string{"Beach"}, Rating: 13.53, Seasons: []SeasonTag{SeasonDecApr}},
		{PlaceID: 3, Name: "Kandy", Types: []string{"City", "Cultural"}, Rating: 14.07, Seasons: []SeasonTag{SeasonDecApr, SeasonJunSep}},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	edges := []DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 64.5},
		{FromID: 2, ToID: 3, DistanceKm: 150},
	}

	catalog, err := NewCatalog(testLocations(), edges)
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	loc, ok := catalog.LocationByID(2)
	require.True(t, ok)
	assert.Equal(t, "Bentota", loc.Name)

	_, ok = catalog.LocationByID(99)
	assert.False(t, ok)
}

func TestNewCatalog_Invariants(t *testing.T) {
	tests := []struct {
		name      string
		locations []Location
		edges     []DistanceEdge
	}{
		{
			name: "duplicate place id",
			locations: []Location{
				{PlaceID: 1, Name: "A", Types: []string{"City"}},
				{PlaceID: 1, Name: "B", Types: []string{"Beach"}},
			},
		},
		{
			name: "empty type set",
			locations: []Location{
				{PlaceID: 1, Name: "A", Types: nil},
			},
		},
		{
			name: "unknown season tag",
			locations: []Location{
				{PlaceID: 1, Name: "A", Types: []string{"City"}, Seasons: []SeasonTag{"MAY-NOV"}},
			},
		},
		{
			name:      "negative distance",
			locations: testLocations(),
			edges:     []DistanceEdge{{FromID: 1, ToID: 2, DistanceKm: -1}},
		},
		{
			name:      "edge references unknown location",
			locations: testLocations(),
			edges:     []DistanceEdge{{FromID: 1, ToID: 42, DistanceKm: 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.locations, tt.edges)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCatalogInvalid)
		})
	}
}

func TestCatalog_Distance(t *testing.T) {
	edges := []DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 64.5},
	}
	catalog, err := NewCatalog(testLocations(), edges)
	require.NoError(t, err)

	t.Run("lookup is undirected", func(t *testing.T) {
		forward, ok := catalog.Distance(1, 2)
		require.True(t, ok)
		reverse, ok2 := catalog.Distance(2, 1)
		require.True(t, ok2)
		assert.Equal(t, forward, reverse)
		assert.Equal(t, 64.5, forward)
	})

	t.Run("missing pair reports not found", func(t *testing.T) {
		d, ok := catalog.Distance(1, 3)
		assert.False(t, ok)
		assert.Zero(t, d)
	})
}

func TestCatalog_Distance_FirstRecordWins(t *testing.T) {
	// Both directions recorded with slightly different road distances.
	edges := []DistanceEdge{
		{FromID: 1, ToID: 2, DistanceKm: 64.5},
		{FromID: 2, ToID: 1, DistanceKm: 66.0},
	}
	catalog, err := NewCatalog(testLocations(), edges)
	require.NoError(t, err)

	d, ok := catalog.Distance(1, 2)
	require.True(t, ok)
	assert.Equal(t, 64.5, d, "the first catalog record must win")

	d, ok = catalog.Distance(2, 1)
	require.True(t, ok)
	assert.Equal(t, 64.5, d)
}

func TestCatalog_LocationsPreservesOrder(t *testing.T) {
	catalog, err := NewCatalog(testLocations(), nil)
	require.NoError(t, err)

	got := catalog.Locations()
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].PlaceID)
	assert.Equal(t, 2, got[1].PlaceID)
	assert.Equal(t, 3, got[2].PlaceID)
}

func TestLocation_HasType(t *testing.T) {
	loc := Location{PlaceID: 3, Name: "Kandy", Types: []string{"City", "Cultural"}}

	assert.True(t, loc.HasType("Cultural"))
	assert.False(t, loc.HasType("Beach"))
}
