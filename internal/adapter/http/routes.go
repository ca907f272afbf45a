// Package http provides the HTTP handler layer for the trip cost API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all trip cost API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *PriceHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	api.GET("/cities", h.Cities)
	api.GET("/cities/:cityId/calendar", h.Calendar)
	api.GET("/compare", h.Compare)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *PriceHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	api.GET("/cities", h.Cities)
	api.GET("/cities/:cityId/calendar", h.Calendar)
	api.GET("/compare", h.Compare)
}
