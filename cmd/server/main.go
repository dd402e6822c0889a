package main // Entry point package

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/booking"
	"github.com/xtremegk/booking-api/internal/clock"
	"github.com/xtremegk/booking-api/internal/config"
	"github.com/xtremegk/booking-api/internal/handler"
	"github.com/xtremegk/booking-api/internal/queue"
	"github.com/xtremegk/booking-api/internal/repository"
	"github.com/xtremegk/booking-api/internal/router"
)

func main() {
	_ = godotenv.Load() // optional .env for local development
	cfg := config.Load()

	settings, err := repository.LoadSettings(filepath.Join(cfg.DataDir, "settings.json"))
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	catalog, err := repository.LoadCatalog(filepath.Join(cfg.DataDir, "products.json"))
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	bookings, err := repository.LoadBookings(filepath.Join(cfg.DataDir, "bookings.json"))
	if err != nil {
		log.Fatalf("load bookings: %v", err)
	}

	calc := booking.NewCalculator(catalog, settings, bookings)
	sched := booking.NewScheduler(catalog, settings, bookings, clock.NewSystem())

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting and caching disabled")
	}

	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Catalog:      handler.NewCatalogHandler(catalog),
		Availability: handler.NewAvailabilityHandler(calc),
		Booking:      handler.NewBookingHandler(sched),
		Checkin:      handler.NewCheckinHandler(sched),
		Auth:         handler.NewAuthHandler(cfg, settings),
	}, settings.Current().Admin.JWTSecret, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
