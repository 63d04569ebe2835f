package domain

import (
	"fmt"
	"time"
)

// PlanCriteria defines the parameters for one itinerary computation.
// Dates are parsed at the boundary; the domain works with time.Time only.
type PlanCriteria struct {
	// StartDate is the first trip day (inclusive)
	StartDate time.Time

	// EndDate is the last trip day (inclusive, must not precede StartDate)
	EndDate time.Time

	// Preferences maps category tags to percentage weights.
	// Categories absent from the map weigh 0.
	Preferences map[string]float64

	// Pace is the preset name (Fast-Paced, Balanced, Relaxing)
	Pace string

	// MandatoryLocations lists display names that must appear in the itinerary
	MandatoryLocations []string

	// ExcludedLocations lists display names that must never appear.
	// Exclusion is authoritative over MandatoryLocations.
	ExcludedLocations []string

	// SpecificInterests lists place IDs whose scores get boosted
	SpecificInterests []int

	// NumTravelers is the group size (>= 1)
	NumTravelers int
}

// Validate checks the criteria for contract violations.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (c *PlanCriteria) Validate() error {
	if c.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidRequest)
	}
	if c.EndDate.IsZero() {
		return fmt.Errorf("%w: end date is required", ErrInvalidRequest)
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("%w: end date %s precedes start date %s",
			ErrInvalidRequest, c.EndDate.Format("2006-01-02"), c.StartDate.Format("2006-01-02"))
	}
	if c.NumTravelers < 1 {
		return fmt.Errorf("%w: num_travelers must be at least 1", ErrInvalidRequest)
	}
	for tag, weight := range c.Preferences {
		if weight < 0 {
			return fmt.Errorf("%w: preference weight for %q must not be negative", ErrInvalidRequest, tag)
		}
	}
	if _, err := PaceByName(c.Pace); err != nil {
		return err
	}
	return nil
}

// SetDefaults applies default values to empty optional fields.
func (c *PlanCriteria) SetDefaults() {
	if c.Pace == "" {
		c.Pace = DefaultPace
	}
	if c.NumTravelers == 0 {
		c.NumTravelers = 1
	}
}

// TripDurationDays returns the inclusive trip length in days.
// A one-day trip (start == end) has a duration of 1.
func (c *PlanCriteria) TripDurationDays() int {
	return int(c.EndDate.Sub(c.StartDate).Hours()/24) + 1
}
