package http

import (
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/infrastructure/timeutil"
)

// ToPlanCriteria converts a validated PlanItineraryRequest to domain.PlanCriteria.
// Call Validate first: malformed dates produce zero time values here.
func ToPlanCriteria(req *PlanItineraryRequest) domain.PlanCriteria {
	start, _ := timeutil.ParseDate(req.StartDate)
	end, _ := timeutil.ParseDate(req.EndDate)

	return domain.PlanCriteria{
		StartDate:          start,
		EndDate:            end,
		Preferences:        req.Preferences,
		Pace:               req.Pace,
		MandatoryLocations: req.MandatoryLocations,
		ExcludedLocations:  req.ExcludedLocations,
		SpecificInterests:  req.SpecificInterests,
		NumTravelers:       req.NumTravelers,
	}
}
