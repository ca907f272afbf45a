// Package response provides standardized HTTP response builders for the trip cost API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request envelope with the given error message.
func BadRequest(c echo.Context, message string) error {
	return Fail(c, http.StatusBadRequest, message)
}

// NotFound writes a 404 Not Found envelope with the given error message.
func NotFound(c echo.Context, message string) error {
	return Fail(c, http.StatusNotFound, message)
}

// ServiceUnavailable writes a 503 Service Unavailable envelope.
func ServiceUnavailable(c echo.Context) error {
	return Fail(c, http.StatusServiceUnavailable, MsgStoreUnavailable)
}

// InternalServerError writes a 500 Internal Server Error envelope.
func InternalServerError(c echo.Context) error {
	return Fail(c, http.StatusInternalServerError, MsgInternalError)
}
