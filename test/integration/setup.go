// Package integration provides helpers and integration tests for the itinerary
// planning system. Integration tests verify that components work together
// correctly, including HTTP handlers, the planner use case, and the catalog.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/adapter/http"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/domain"
	"github.com/SeniraVinwath/cs24-sdgp-trip-ceylon/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server backed by the given planner.
func NewTestServer(planner usecase.ItineraryPlanner) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(planner)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// PlanRequest posts a plan request with the given body.
func (ts *TestServer) PlanRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/plan",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePlanResponse parses the response body as a plan response.
func (r *Response) ParsePlanResponse() (*httpAdapter.PlanResponseDTO, error) {
	var resp httpAdapter.PlanResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// PlanRequestBody is a helper struct for building plan request bodies.
type PlanRequestBody struct {
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	Preferences        map[string]float64 `json:"preferences,omitempty"`
	Pace               string             `json:"pace,omitempty"`
	MandatoryLocations []string           `json:"mandatory_locations,omitempty"`
	ExcludedLocations  []string           `json:"excluded_locations,omitempty"`
	SpecificInterests  []int              `json:"specific_interests,omitempty"`
	NumTravelers       int                `json:"num_travelers,omitempty"`
}

// DefaultPlanRequest returns a valid plan request body for testing.
func DefaultPlanRequest() PlanRequestBody {
	return PlanRequestBody{
		StartDate: "2026-07-10",
		EndDate:   "2026-07-13",
		Preferences: map[string]float64{
			"Beach":    80,
			"Cultural": 60,
		},
		Pace:         "Balanced",
		NumTravelers: 2,
	}
}

// CreatePlanner creates a planner over the given catalog with the system clock.
func CreatePlanner(catalog domain.CatalogStore) usecase.ItineraryPlanner {
	return usecase.NewItineraryPlanner(catalog, nil)
}
