package http

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trip-cost/trip-cost-calendar-service/internal/adapter/http/response"
	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
	"github.com/trip-cost/trip-cost-calendar-service/internal/usecase"
)

// Cache lifetimes for the public read endpoints. Calendars change when the
// collector runs; the city catalog only changes on deploy.
const (
	calendarCacheMaxAge = time.Hour
	citiesCacheMaxAge   = 24 * time.Hour
)

// PriceHandler handles HTTP requests for trip cost endpoints.
type PriceHandler struct {
	useCase usecase.PriceCalendarUseCase
}

// NewPriceHandler creates a new PriceHandler with the given use case.
func NewPriceHandler(uc usecase.PriceCalendarUseCase) *PriceHandler {
	return &PriceHandler{
		useCase: uc,
	}
}

// Calendar handles GET /api/v1/cities/:cityId/calendar
//
// @Summary Per-date trip cost calendar for a city
// @Description Combines collected flight and hotel quotes into labeled per-date trip costs
// @Tags calendar
// @Produce json
// @Param cityId path string true "City identifier" example(tokyo)
// @Param tripLength query int false "Trip length in days (3-7, default 5)" example(5)
// @Success 200 {object} response.Envelope{data=CalendarDTO}
// @Failure 400 {object} response.Envelope "Invalid trip length"
// @Failure 404 {object} response.Envelope "Unknown city"
// @Failure 503 {object} response.Envelope "Price store unavailable"
// @Router /api/v1/cities/{cityId}/calendar [get]
func (h *PriceHandler) Calendar(c echo.Context) error {
	params, err := BindCalendarParams(c)
	if err != nil {
		return h.handleError(c, err)
	}

	cal, cacheHit, err := h.useCase.Calendar(c.Request().Context(), params.CityID, params.TripLengthDays)
	if err != nil {
		return h.handleError(c, err)
	}

	response.CacheControl(c, calendarCacheMaxAge)
	return response.OK(c, ToCalendarDTO(cal), &response.Meta{
		CityID:         params.CityID,
		TripLengthDays: params.TripLengthDays,
		Count:          len(cal.Entries),
		CacheHit:       cacheHit,
	})
}

// Compare handles GET /api/v1/compare
//
// @Summary Rank cities by minimum per-person trip cost
// @Description Reduces each city's trip cost series and sorts cheapest first
// @Tags compare
// @Produce json
// @Param tripLength query int false "Trip length in days (3-7, default 5)" example(5)
// @Success 200 {object} response.Envelope{data=[]domain.CityCostSummary}
// @Failure 400 {object} response.Envelope "Invalid trip length"
// @Failure 503 {object} response.Envelope "Price store unavailable"
// @Router /api/v1/compare [get]
func (h *PriceHandler) Compare(c echo.Context) error {
	tripLength, err := BindTripLength(c)
	if err != nil {
		return h.handleError(c, err)
	}

	summaries, cacheHit, err := h.useCase.Compare(c.Request().Context(), tripLength)
	if err != nil {
		return h.handleError(c, err)
	}

	response.CacheControl(c, calendarCacheMaxAge)
	return response.OK(c, summaries, &response.Meta{
		TripLengthDays: tripLength,
		Count:          len(summaries),
		CacheHit:       cacheHit,
	})
}

// Cities handles GET /api/v1/cities
//
// @Summary List the destination catalog
// @Tags cities
// @Produce json
// @Success 200 {object} response.Envelope{data=[]CityDTO}
// @Router /api/v1/cities [get]
func (h *PriceHandler) Cities(c echo.Context) error {
	cities := h.useCase.Cities(c.Request().Context())

	response.CacheControl(c, citiesCacheMaxAge)
	return response.OK(c, ToCityDTOs(cities), &response.Meta{
		Count: len(cities),
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *PriceHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *PriceHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrInvalidTripLength) {
		return response.BadRequest(c, response.MsgInvalidTripLength)
	}

	if errors.Is(err, domain.ErrUnknownCity) {
		return response.NotFound(c, response.MsgUnknownCity)
	}

	if errors.Is(err, domain.ErrStoreUnavailable) {
		return response.ServiceUnavailable(c)
	}

	return response.InternalServerError(c)
}
