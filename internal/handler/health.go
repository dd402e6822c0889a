package handler // package handler contains the HTTP handlers for the API

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root is the service banner returned at GET /. Load balancers and smoke
// tests use it to verify the API answers at all.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "service": "booking-api"})
}

// Health is a plain health-check endpoint for monitoring systems.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
