package domain

import "errors"

// Sentinel errors for the itinerary planning domain.
// Callers should use errors.Is to classify them; messages carry the detail.
var (
	// ErrInvalidRequest indicates the plan request failed validation.
	// It maps to HTTP 400 at the boundary.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnknownPace indicates the requested pace is not a supported preset.
	ErrUnknownPace = errors.New("unknown pace")

	// ErrCatalogInvalid indicates the location or distance catalog violated a
	// construction invariant (duplicate identifiers, empty type sets, bad edges).
	ErrCatalogInvalid = errors.New("invalid catalog")
)
