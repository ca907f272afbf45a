// Package response provides standardized HTTP response builders for the trip cost API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope represents the standardized API response envelope.
// Every endpoint returns this shape; Data is null on failure and
// Error is null on success.
type Envelope struct {
	// Data contains the response payload (null for error responses)
	Data interface{} `json:"data"`

	// Error contains a human-readable error message (null for successful responses)
	Error *string `json:"error"`

	// Meta carries request-scoped metadata about the payload
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries metadata about the response payload.
type Meta struct {
	// CityID is the city the payload was computed for, when scoped to one city
	CityID string `json:"cityId,omitempty"`

	// TripLengthDays is the trip length the payload was computed for
	TripLengthDays int `json:"tripLength,omitempty"`

	// Count is the number of items in the payload
	Count int `json:"count"`

	// CacheHit reports whether the payload was served from the computed-response cache
	CacheHit bool `json:"cacheHit"`
}

// Error messages used in API responses.
const (
	MsgUnknownCity       = "unknown city"
	MsgInvalidTripLength = "tripLength must be between 3 and 7"
	MsgStoreUnavailable  = "price data is temporarily unavailable"
	MsgInternalError     = "an unexpected error occurred"
)

// OK writes a 200 OK envelope with the given data and meta.
func OK(c echo.Context, data interface{}, meta *Meta) error {
	return c.JSON(http.StatusOK, &Envelope{
		Data: data,
		Meta: meta,
	})
}

// Fail writes an error envelope with a null data field.
func Fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &Envelope{
		Error: &message,
	})
}

// CacheControl sets a public max-age cache header on the response.
// The original API serves calendars with a one hour lifetime and the
// city catalog with a one day lifetime.
func CacheControl(c echo.Context, maxAge time.Duration) {
	c.Response().Header().Set("Cache-Control",
		fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
}
