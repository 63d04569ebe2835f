// Package http provides the HTTP handler layer for the itinerary planning API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"regexp"
	"time"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
)

// PlanItineraryRequest represents the request body for itinerary planning.
type PlanItineraryRequest struct {
	// StartDate is the first trip day in YYYY-MM-DD format
	StartDate string `json:"start_date"`

	// EndDate is the last trip day in YYYY-MM-DD format (inclusive)
	EndDate string `json:"end_date"`

	// Preferences maps category tags to percentage weights, e.g. {"Beach": 80}
	Preferences map[string]float64 `json:"preferences,omitempty"`

	// Pace is the trip pace preset: Fast-Paced, Balanced, or Relaxing (optional)
	Pace string `json:"pace,omitempty"`

	// MandatoryLocations lists location names that must be included
	MandatoryLocations []string `json:"mandatory_locations,omitempty"`

	// ExcludedLocations lists location names that must never be included
	ExcludedLocations []string `json:"excluded_locations,omitempty"`

	// SpecificInterests lists place IDs whose scores get boosted
	SpecificInterests []int `json:"specific_interests,omitempty"`

	// NumTravelers is the group size (defaults to 1)
	NumTravelers int `json:"num_travelers,omitempty"`
}

// datePattern matches the YYYY-MM-DD wire format.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the plan request and returns any validation errors.
func (r *PlanItineraryRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateStartDate(errs)
	r.validateEndDate(errs)
	r.validateDateOrder(errs)
	r.validatePace(errs)
	r.validateNumTravelers(errs)
	r.validatePreferences(errs)
	r.validateSpecificInterests(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *PlanItineraryRequest) validateStartDate(errs *ValidationErrors) {
	if r.StartDate == "" {
		errs.Add("start_date", "start_date is required")
		return
	}
	if !datePattern.MatchString(r.StartDate) {
		errs.Add("start_date", "start_date must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.StartDate); err != nil {
		errs.Add("start_date", "start_date is not a valid date")
	}
}

func (r *PlanItineraryRequest) validateEndDate(errs *ValidationErrors) {
	if r.EndDate == "" {
		errs.Add("end_date", "end_date is required")
		return
	}
	if !datePattern.MatchString(r.EndDate) {
		errs.Add("end_date", "end_date must be in YYYY-MM-DD format")
		return
	}
	if _, err := time.Parse("2006-01-02", r.EndDate); err != nil {
		errs.Add("end_date", "end_date is not a valid date")
	}
}

func (r *PlanItineraryRequest) validateDateOrder(errs *ValidationErrors) {
	start, errStart := time.Parse("2006-01-02", r.StartDate)
	end, errEnd := time.Parse("2006-01-02", r.EndDate)
	if errStart != nil || errEnd != nil {
		return // Individual date validators already reported the problem
	}
	if end.Before(start) {
		errs.Add("end_date", "end_date must not be before start_date")
	}
}

func (r *PlanItineraryRequest) validatePace(errs *ValidationErrors) {
	if r.Pace == "" {
		return // Empty is valid (defaults to Balanced)
	}
	if _, err := domain.PaceByName(r.Pace); err != nil {
		errs.Add("pace", "pace must be one of: Fast-Paced, Balanced, Relaxing")
	}
}

func (r *PlanItineraryRequest) validateNumTravelers(errs *ValidationErrors) {
	if r.NumTravelers < 0 {
		errs.Add("num_travelers", "num_travelers must be at least 1")
	}
}

func (r *PlanItineraryRequest) validatePreferences(errs *ValidationErrors) {
	for tag, weight := range r.Preferences {
		if weight < 0 {
			errs.Add(fmt.Sprintf("preferences.%s", tag),
				"preference weight must be a non-negative number")
		}
	}
}

func (r *PlanItineraryRequest) validateSpecificInterests(errs *ValidationErrors) {
	for i, id := range r.SpecificInterests {
		if id < 1 {
			errs.Add(fmt.Sprintf("specific_interests[%d]", i),
				"place ID must be a positive number")
		}
	}
}
