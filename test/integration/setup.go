// Package integration provides helpers and integration tests for the trip
// cost calendar system. Integration tests verify that components work
// together correctly: HTTP handlers, the use case, and the quote store.
package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-cost/trip-cost-calendar-service/internal/adapter/http"
	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.PriceHandler
}

// NewTestServer creates a test server around the given use case.
func NewTestServer(uc usecase.PriceCalendarUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewPriceHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewTestServerWithStore creates a test server with a real use case over the
// given store. A nil config uses use case defaults.
func NewTestServerWithStore(store domain.QuoteReader, config *usecase.Config) *TestServer {
	return NewTestServer(usecase.NewPriceCalendarUseCase(store, nil, config))
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the server.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// CalendarRequest requests a city's calendar, optionally with a tripLength
// query (empty string omits it).
func (ts *TestServer) CalendarRequest(cityID, tripLength string) Response {
	path := "/api/v1/cities/" + cityID + "/calendar"
	if tripLength != "" {
		path += "?tripLength=" + tripLength
	}
	return ts.Get(path)
}

// CompareRequest requests the cross-city ranking.
func (ts *TestServer) CompareRequest(tripLength string) Response {
	path := "/api/v1/compare"
	if tripLength != "" {
		path += "?tripLength=" + tripLength
	}
	return ts.Get(path)
}

// CitiesRequest requests the destination catalog.
func (ts *TestServer) CitiesRequest() Response {
	return ts.Get("/api/v1/cities")
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// Envelope mirrors the API response envelope for assertions.
type Envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *string                `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

// ParseEnvelope parses the response body as the API envelope.
func (r *Response) ParseEnvelope() (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// captureSink records emitted analytics events for assertions.
type captureSink struct {
	mu     sync.Mutex
	events []domain.Event
}

// Emit implements domain.EventSink.
func (s *captureSink) Emit(_ context.Context, e domain.Event) {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
}

// Events returns a snapshot of the recorded events.
func (s *captureSink) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Event(nil), s.events...)
}
