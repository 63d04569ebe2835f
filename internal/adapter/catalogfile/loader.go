// Package catalogfile loads the location and distance catalog from JSON files
// on disk and exposes it as an immutable domain catalog.
package catalogfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// locationRecord mirrors one entry of the locations JSON file.
type locationRecord struct {
	PlaceID int      `json:"place_id"`
	Name    string   `json:"name"`
	Types   []string `json:"types"`
	Rating  float64  `json:"rating"`
	Season  []string `json:"season"`
}

// distanceRecord mirrors one entry of the distances JSON file.
type distanceRecord struct {
	PlaceIDFrom int     `json:"place_id_from"`
	PlaceIDTo   int     `json:"place_id_to"`
	DistanceKm  float64 `json:"distance_km"`
}

// Load reads the two catalog files and builds a validated domain catalog.
// Construction invariants (unique IDs, known edge endpoints, non-negative
// distances) are enforced by the domain layer; file and decode failures are
// reported as wrapped errors with the offending path.
func Load(locationsPath, distancesPath string) (*domain.Catalog, error) {
	locations, err := loadLocations(locationsPath)
	if err != nil {
		return nil, err
	}

	edges, err := loadDistances(distancesPath)
	if err != nil {
		return nil, err
	}

	catalog, err := domain.NewCatalog(locations, edges)
	if err != nil {
		return nil, fmt.Errorf("building catalog from %s and %s: %w", locationsPath, distancesPath, err)
	}
	return catalog, nil
}

// loadLocations reads and converts the locations file.
func loadLocations(path string) ([]domain.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading locations file: %w", err)
	}

	var records []locationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing locations file %s: %w", path, err)
	}

	locations := make([]domain.Location, 0, len(records))
	for _, r := range records {
		locations = append(locations, toLocation(r))
	}
	return locations, nil
}

// loadDistances reads and converts the distances file.
func loadDistances(path string) ([]domain.DistanceEdge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading distances file: %w", err)
	}

	var records []distanceRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing distances file %s: %w", path, err)
	}

	edges := make([]domain.DistanceEdge, 0, len(records))
	for _, r := range records {
		edges = append(edges, domain.DistanceEdge{
			FromID:     r.PlaceIDFrom,
			ToID:       r.PlaceIDTo,
			DistanceKm: r.DistanceKm,
		})
	}
	return edges, nil
}

// toLocation converts a file record to a domain Location.
func toLocation(r locationRecord) domain.Location {
	seasons := make([]domain.SeasonTag, 0, len(r.Season))
	for _, s := range r.Season {
		seasons = append(seasons, domain.SeasonTag(s))
	}

	return domain.Location{
		PlaceID: r.PlaceID,
		Name:    r.Name,
		Types:   r.Types,
		Rating:  r.Rating,
		Seasons: seasons,
	}
}
