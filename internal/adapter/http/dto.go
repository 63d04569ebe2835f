package http

import (
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// PlanResponseDTO is the data transfer object for plan responses.
// It matches the expected API output format with snake_case fields.
type PlanResponseDTO struct {
	TripDuration          int                `json:"trip_duration"`
	Pace                  string             `json:"pace"`
	NumTravelers          int                `json:"num_travelers"`
	MinBudgetPerPerson    float64            `json:"min_budget_per_person"`
	ActualBudgetPerPerson float64            `json:"actual_budget_per_person"`
	TotalGroupBudget      float64            `json:"total_group_budget"`
	TotalLocations        int                `json:"total_locations"`
	Itinerary             []ItineraryStopDTO `json:"itinerary"`
	BudgetBreakdown       BudgetBreakdownDTO `json:"budget_breakdown_per_person"`
	Metadata              MetadataDTO        `json:"metadata"`
}

// ItineraryStopDTO represents one scheduled stop in the response.
type ItineraryStopDTO struct {
	Day              int      `json:"day"`
	PlaceID          int      `json:"place_id"`
	Name             string   `json:"name"`
	Types            []string `json:"types"`
	Rating           float64  `json:"rating"`
	Season           []string `json:"season,omitempty"`
	DistanceToNextKm float64  `json:"distance_to_next_km"`
}

// BudgetBreakdownDTO represents the per-person cost components.
type BudgetBreakdownDTO struct {
	Transportation float64 `json:"transportation"`
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Total          float64 `json:"total"`
}

// MetadataDTO contains metadata about the plan computation.
type MetadataDTO struct {
	GenerationTimeMs int64 `json:"generation_time_ms"`
}

// ToPlanResponseDTO converts a domain ItineraryPlan to a PlanResponseDTO.
func ToPlanResponseDTO(plan *domain.ItineraryPlan) *PlanResponseDTO {
	if plan == nil {
		return nil
	}

	dto := &PlanResponseDTO{
		TripDuration:          plan.TripDurationDays,
		Pace:                  plan.Pace,
		NumTravelers:          plan.NumTravelers,
		MinBudgetPerPerson:    plan.MinBudgetPerPerson,
		ActualBudgetPerPerson: plan.ActualBudgetPerPerson,
		TotalGroupBudget:      plan.TotalGroupBudget,
		TotalLocations:        plan.TotalLocations(),
		Itinerary:             make([]ItineraryStopDTO, len(plan.Itinerary)),
		BudgetBreakdown: BudgetBreakdownDTO{
			Transportation: plan.Breakdown.Transportation,
			Accommodation:  plan.Breakdown.Accommodation,
			Food:           plan.Breakdown.Food,
			Activities:     plan.Breakdown.Activities,
			Total:          plan.Breakdown.Total,
		},
		Metadata: MetadataDTO{
			GenerationTimeMs: plan.Metadata.GenerationTimeMs,
		},
	}

	for i, entry := range plan.Itinerary {
		dto.Itinerary[i] = ToItineraryStopDTO(&entry)
	}

	return dto
}

// ToItineraryStopDTO converts a domain ItineraryEntry to an ItineraryStopDTO.
func ToItineraryStopDTO(entry *domain.ItineraryEntry) ItineraryStopDTO {
	seasons := make([]string, 0, len(entry.Location.Seasons))
	for _, s := range entry.Location.Seasons {
		seasons = append(seasons, string(s))
	}

	return ItineraryStopDTO{
		Day:              entry.Day,
		PlaceID:          entry.Location.PlaceID,
		Name:             entry.Location.Name,
		Types:            entry.Location.Types,
		Rating:           entry.Location.Rating,
		Season:           seasons,
		DistanceToNextKm: entry.DistanceToNextKm,
	}
}
