// Package domain contains the core business entities and rules for the itinerary
// planning system. These entities are storage-agnostic and form the foundation upon
// which all other components are built.
package domain

// Location represents a single visitable place from the catalog.
type Location struct {
	// PlaceID is the unique, stable identifier of the location within the catalog
	PlaceID int `json:"place_id"`

	// Name is the display name used for mandatory/excluded matching (e.g., "Galle Fort")
	Name string `json:"name"`

	// Types is the non-empty set of category tags (e.g., "Beach", "Historical").
	// Order carries no meaning.
	Types []string `json:"types"`

	// Rating is the intrinsic desirability baseline. The catalog treats it as
	// positive but enforces no upper bound.
	Rating float64 `json:"rating"`

	// Seasons lists the travel windows the location is suitable for.
	// A location tagged with both windows is suitable year-round.
	Seasons []SeasonTag `json:"season"`
}

// HasType reports whether the location carries the given category tag.
func (l Location) HasType(tag string) bool {
	for _, t := range l.Types {
		if t == tag {
			return true
		}
	}
	return false
}

// DistanceEdge is a directed distance record between two catalog locations.
// The catalog may record an edge in only one direction; lookups treat the
// pair as undirected.
type DistanceEdge struct {
	// FromID is the identifier of the origin location
	FromID int `json:"place_id_from"`

	// ToID is the identifier of the destination location
	ToID int `json:"place_id_to"`

	// DistanceKm is the non-negative road distance in kilometers
	DistanceKm float64 `json:"distance_km"`
}
