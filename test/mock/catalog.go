// Package mock provides test doubles for the itinerary planning system.
// These mocks are designed for integration testing where we need
// configurable behavior (custom catalogs, missing distances, call tracking).
package mock

import (
	"sync"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// Catalog is a configurable mock implementation of domain.CatalogStore.
// It supports builder-style configuration of locations and distances and
// tracks lookup calls for verifying planner interactions.
type Catalog struct {
	locations []domain.Location
	byID      map[int]domain.Location
	distances map[[2]int]float64

	distanceCalls int
	mu            sync.Mutex
}

// NewCatalog creates an empty mock catalog.
// Configure it using the builder pattern methods.
func NewCatalog() *Catalog {
	return &Catalog{
		byID:      make(map[int]domain.Location),
		distances: make(map[[2]int]float64),
	}
}

// WithLocations adds the given locations to the catalog.
func (c *Catalog) WithLocations(locations ...domain.Location) *Catalog {
	for _, loc := range locations {
		c.locations = append(c.locations, loc)
		c.byID[loc.PlaceID] = loc
	}
	return c
}

// WithDistance records an undirected distance between two locations.
func (c *Catalog) WithDistance(fromID, toID int, km float64) *Catalog {
	c.distances[pairKey(fromID, toID)] = km
	return c
}

// Locations implements domain.CatalogStore.
func (c *Catalog) Locations() []domain.Location {
	return c.locations
}

// LocationByID implements domain.CatalogStore.
func (c *Catalog) LocationByID(id int) (domain.Location, bool) {
	loc, ok := c.byID[id]
	return loc, ok
}

// Distance implements domain.CatalogStore.
func (c *Catalog) Distance(fromID, toID int) (float64, bool) {
	c.mu.Lock()
	c.distanceCalls++
	c.mu.Unlock()

	d, ok := c.distances[pairKey(fromID, toID)]
	return d, ok
}

// DistanceCalls returns the number of times Distance was called.
// This is useful for verifying routing interactions.
func (c *Catalog) DistanceCalls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distanceCalls
}

// Reset resets the call count to zero.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distanceCalls = 0
}

// pairKey normalizes an undirected pair to a map key.
func pairKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Ensure Catalog implements domain.CatalogStore at compile time.
var _ domain.CatalogStore = (*Catalog)(nil)

// SampleLocations returns a small all-season location set for testing.
// IDs are 1..count, names are distinct, and ratings rise with the ID so
// score-based ordering is predictable.
func SampleLocations(count int) []domain.Location {
	names := []string{
		"Colombo", "Bentota", "Kandy", "Ella", "Galle Fort",
		"Sigiriya", "Mirissa", "Trincomalee", "Yala", "Nuwara Eliya",
	}
	types := [][]string{
		{"City"}, {"Beach"}, {"City", "Cultural"}, {"HillCountry"}, {"Historical"},
		{"Historical", "Adventure"}, {"Beach", "Surfing"}, {"Beach"}, {"Wildlife"}, {"HillCountry", "City"},
	}

	locations := make([]domain.Location, 0, count)
	for i := 0; i < count && i < len(names); i++ {
		locations = append(locations, domain.Location{
			PlaceID: i + 1,
			Name:    names[i],
			Types:   types[i],
			Rating:  4.0 + float64(i)*0.05,
			Seasons: []domain.SeasonTag{domain.SeasonDecApr, domain.SeasonJunSep},
		})
	}
	return locations
}

// SampleCatalog returns a mock catalog with count sample locations and a
// full distance table (every pair recorded, distances growing with ID gap).
func SampleCatalog(count int) *Catalog {
	c := NewCatalog().WithLocations(SampleLocations(count)...)
	for i := 1; i <= count; i++ {
		for j := i + 1; j <= count; j++ {
			c.WithDistance(i, j, float64(j-i)*40.0)
		}
	}
	return c
}
