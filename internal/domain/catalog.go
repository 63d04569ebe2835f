package domain

import "fmt"

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=domain

// CatalogStore is the read-only view of the location and distance catalogs.
// Implementations must be safe for concurrent readers; the catalog is never
// mutated after construction.
type CatalogStore interface {
	// Locations returns every catalog location in stable catalog order.
	// Callers must not mutate the returned slice.
	Locations() []Location

	// LocationByID looks up a location by its identifier.
	LocationByID(id int) (Location, bool)

	// Distance returns the known distance between two locations, treating the
	// pair as undirected. The second return value is false when no edge is
	// recorded in either direction; such pairs cost nothing for budget
	// aggregation but are never candidates during route construction.
	Distance(fromID, toID int) (float64, bool)
}

// edgeKey is the unordered pair key for the distance index.
type edgeKey struct {
	low, high int
}

// newEdgeKey normalizes an ID pair so lookups are direction-independent.
func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{low: a, high: b}
}

// Catalog is the in-memory CatalogStore built once at startup from externally
// owned data. Distances are indexed by unordered ID pair for O(1) lookup.
type Catalog struct {
	locations []Location
	byID      map[int]Location
	distances map[edgeKey]float64
}

// NewCatalog builds a Catalog from location and distance records.
//
// Invariants enforced here: place IDs are unique, every location has at least
// one type tag and only known season tags, distances are non-negative, and
// every edge endpoint exists in the catalog. Violations return a wrapped
// ErrCatalogInvalid.
//
// When both directions of a pair are recorded (possibly with different values
// due to real-world road routing), the first record in input order wins; later
// records for the same pair are ignored. This keeps lookups deterministic.
func NewCatalog(locations []Location, edges []DistanceEdge) (*Catalog, error) {
	byID := make(map[int]Location, len(locations))
	for _, loc := range locations {
		if _, dup := byID[loc.PlaceID]; dup {
			return nil, fmt.Errorf("%w: duplicate place_id %d", ErrCatalogInvalid, loc.PlaceID)
		}
		if len(loc.Types) == 0 {
			return nil, fmt.Errorf("%w: location %d (%s) has no type tags", ErrCatalogInvalid, loc.PlaceID, loc.Name)
		}
		for _, s := range loc.Seasons {
			if !s.IsValid() {
				return nil, fmt.Errorf("%w: location %d (%s) has unknown season tag %q", ErrCatalogInvalid, loc.PlaceID, loc.Name, s)
			}
		}
		byID[loc.PlaceID] = loc
	}

	distances := make(map[edgeKey]float64, len(edges))
	for _, e := range edges {
		if e.DistanceKm < 0 {
			return nil, fmt.Errorf("%w: negative distance %f between %d and %d", ErrCatalogInvalid, e.DistanceKm, e.FromID, e.ToID)
		}
		if _, ok := byID[e.FromID]; !ok {
			return nil, fmt.Errorf("%w: distance edge references unknown place_id %d", ErrCatalogInvalid, e.FromID)
		}
		if _, ok := byID[e.ToID]; !ok {
			return nil, fmt.Errorf("%w: distance edge references unknown place_id %d", ErrCatalogInvalid, e.ToID)
		}
		key := newEdgeKey(e.FromID, e.ToID)
		if _, exists := distances[key]; exists {
			// First record wins.
			continue
		}
		distances[key] = e.DistanceKm
	}

	// Copy so later mutation of the caller's slice cannot reach the catalog.
	locs := make([]Location, len(locations))
	copy(locs, locations)

	return &Catalog{
		locations: locs,
		byID:      byID,
		distances: distances,
	}, nil
}

// Locations implements CatalogStore.
func (c *Catalog) Locations() []Location {
	return c.locations
}

// LocationByID implements CatalogStore.
func (c *Catalog) LocationByID(id int) (Location, bool) {
	loc, ok := c.byID[id]
	return loc, ok
}

// Distance implements CatalogStore.
func (c *Catalog) Distance(fromID, toID int) (float64, bool) {
	d, ok := c.distances[newEdgeKey(fromID, toID)]
	return d, ok
}

// Len returns the number of catalog locations.
func (c *Catalog) Len() int {
	return len(c.locations)
}

// Ensure Catalog implements CatalogStore at compile time.
var _ CatalogStore = (*Catalog)(nil)
