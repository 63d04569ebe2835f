package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/adapter/http/response"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary-related endpoints.
type ItineraryHandler struct {
	planner usecase.ItineraryPlanner
}

// NewItineraryHandler creates a new ItineraryHandler with the given planner.
func NewItineraryHandler(planner usecase.ItineraryPlanner) *ItineraryHandler {
	return &ItineraryHandler{
		planner: planner,
	}
}

// PlanItinerary handles POST /api/v1/itineraries/plan
func (h *ItineraryHandler) PlanItinerary(c echo.Context) error {
	var req PlanItineraryRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToPlanCriteria(&req)

	plan, err := h.planner.Plan(c.Request().Context(), criteria)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.PlanResult(c, ToPlanResponseDTO(plan))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrUnknownPace) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
