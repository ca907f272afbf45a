// Package http provides the HTTP handler layer for the trip cost API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trip-cost/trip-cost-calendar-service/internal/domain"
)

// CalendarParams holds the parsed parameters of a calendar request.
type CalendarParams struct {
	// CityID is the catalog identifier from the URL path
	CityID string

	// TripLengthDays is the requested trip length, defaulted when absent
	TripLengthDays int
}

// BindCalendarParams extracts and validates the calendar request parameters.
// Validation failures wrap domain sentinel errors so the handler can map
// them to status codes.
func BindCalendarParams(c echo.Context) (CalendarParams, error) {
	tripLength, err := BindTripLength(c)
	if err != nil {
		return CalendarParams{}, err
	}

	return CalendarParams{
		CityID:         c.Param("cityId"),
		TripLengthDays: tripLength,
	}, nil
}

// BindTripLength parses the tripLength query parameter. A missing parameter
// defaults to domain.DefaultTripLength; a malformed or out-of-range value
// wraps domain.ErrInvalidTripLength.
func BindTripLength(c echo.Context) (int, error) {
	raw := c.QueryParam("tripLength")
	if raw == "" {
		return domain.DefaultTripLength, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidTripLength, raw)
	}
	if !domain.ValidTripLength(n) {
		return 0, fmt.Errorf("%w: %d (must be %d-%d)",
			domain.ErrInvalidTripLength, n, domain.MinTripLength, domain.MaxTripLength)
	}

	return n, nil
}
