package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/xtremegk/booking-api/internal/config"
	"github.com/xtremegk/booking-api/internal/handler"
	"github.com/xtremegk/booking-api/internal/middleware"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Catalog      *handler.CatalogHandler
	Availability *handler.AvailabilityHandler
	Booking      *handler.BookingHandler
	Checkin      *handler.CheckinHandler
	Auth         *handler.AuthHandler
}

// Register wires all routes onto the Echo instance. The rate limiter covers
// the whole public surface; the response cache covers only the two read
// endpoints whose answers are derivable from the documents. Check-in sits
// behind JWT auth with the ADMIN role; the handlers themselves never look
// at identity.
func Register(e *echo.Echo, h Handlers, jwtSecret string, rdb *redis.Client) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)

	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cached := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	api := e.Group("/api")
	api.GET("/products", h.Catalog.List, cached)
	api.GET("/availability", h.Availability.Get, cached)
	api.POST("/bookings", h.Booking.Create)
	api.GET("/bookings/:code", h.Booking.GetByCode)
	api.POST("/auth/login", h.Auth.Login)

	staff := api.Group("/staff")
	staff.Use(middleware.JWTAuth(jwtSecret))
	staff.Use(middleware.RequireRole(handler.RoleAdmin))
	staff.POST("/checkin", h.Checkin.CheckIn)
}
