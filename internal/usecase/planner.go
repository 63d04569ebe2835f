package usecase

import (
	"context"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/infrastructure/timeutil"
)

// ItineraryPlanner defines the interface for itinerary computation.
type ItineraryPlanner interface {
	// Plan computes a full itinerary for the given criteria against the
	// injected catalog. It validates the criteria, scores and selects
	// locations, builds the day-assigned route, and estimates budgets.
	Plan(ctx context.Context, criteria domain.PlanCriteria) (*domain.ItineraryPlan, error)
}

// itineraryPlanner implements ItineraryPlanner over an immutable catalog.
// The planner holds no mutable state; it is safe for concurrent requests.
type itineraryPlanner struct {
	catalog domain.CatalogStore
	clock   timeutil.Clock
}

// NewItineraryPlanner creates an ItineraryPlanner backed by the given catalog.
// A nil clock falls back to the system clock.
func NewItineraryPlanner(catalog domain.CatalogStore, clock timeutil.Clock) ItineraryPlanner {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &itineraryPlanner{
		catalog: catalog,
		clock:   clock,
	}
}

// Plan implements ItineraryPlanner.Plan.
//
// The computation is a single synchronous pass: score → select → route →
// budget. Every in-core condition (empty pool after exclusion, unreachable
// locations, zero capacity) degrades to a smaller or empty plan; the only
// failures are criteria validation and an unknown pace preset.
func (p *itineraryPlanner) Plan(_ context.Context, criteria domain.PlanCriteria) (*domain.ItineraryPlan, error) {
	started := p.clock.Now()

	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	pace, err := domain.PaceByName(criteria.Pace)
	if err != nil {
		return nil, err
	}

	tripDuration := criteria.TripDurationDays()
	minBudget := MinimumBudget(pace, tripDuration, criteria.NumTravelers)

	scored := ScoreLocations(p.catalog.Locations(), criteria.Preferences, criteria.StartDate, criteria.EndDate)

	selected := SelectLocations(
		p.catalog.Locations(),
		ScoresByID(scored),
		criteria.MandatoryLocations,
		criteria.ExcludedLocations,
		criteria.SpecificInterests,
		tripDuration*pace.LocationsPerDay,
	)

	itinerary := BuildRoute(selected, p.catalog, pace.DistancePerDayKm, tripDuration)

	actualBudget, breakdown := ActualBudget(itinerary, pace, tripDuration, criteria.NumTravelers)

	return &domain.ItineraryPlan{
		TripDurationDays:      tripDuration,
		Pace:                  pace.Name,
		NumTravelers:          criteria.NumTravelers,
		MinBudgetPerPerson:    minBudget,
		ActualBudgetPerPerson: actualBudget,
		TotalGroupBudget:      actualBudget * float64(criteria.NumTravelers),
		Itinerary:             itinerary,
		Breakdown:             breakdown,
		Metadata: domain.PlanMetadata{
			GenerationTimeMs: p.clock.Now().Sub(started).Milliseconds(),
		},
	}, nil
}

// Ensure itineraryPlanner implements ItineraryPlanner at compile time.
var _ ItineraryPlanner = (*itineraryPlanner)(nil)
