package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/booking"
	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/queue"
	"github.com/xtremegk/booking-api/internal/repository"
	queue_publisher "github.com/xtremegk/booking-api/internal/service"
)

// BookingHandler exposes booking creation and lookup. Events are published
// best-effort after a successful commit; a broker outage never fails the
// customer's request.
type BookingHandler struct {
	Sched *booking.Scheduler
}

func NewBookingHandler(sched *booking.Scheduler) *BookingHandler {
	return &BookingHandler{Sched: sched}
}

// ----- DTOs -----

type createBookingReq struct {
	Customer  model.Customer   `json:"customer"`
	Items     []model.LineItem `json:"items"`
	StartTime string           `json:"startTime"`
}

type bookingResp struct {
	OK      bool          `json:"ok"`
	Booking model.Booking `json:"booking"`
}

// Create handles POST /api/bookings. The start time must be RFC 3339; the
// scheduler performs all further validation and the atomic commit.
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}
	var startTime time.Time
	if req.StartTime != "" {
		t, err := time.Parse(time.RFC3339, req.StartTime)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
		}
		startTime = t
	}

	b, err := h.Sched.CreateBooking(booking.CreateBookingInput{
		Customer:  req.Customer,
		Items:     req.Items,
		StartTime: startTime,
	})
	switch {
	case err == nil:
	case errors.Is(err, booking.ErrInvalidPayload):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	case errors.Is(err, booking.ErrInvalidItem):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid item"})
	case errors.Is(err, booking.ErrSlotUnavailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "Slot unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	_ = queue_publisher.PublishBookingConfirmed(c.Request().Context(), queue.BookingConfirmedEvent{
		BookingID:     b.ID,
		Code:          b.Code,
		CustomerName:  b.Customer.Name,
		CustomerEmail: b.Customer.Email,
		Items:         len(b.Items),
		TotalCents:    b.TotalCents,
		StartsAt:      b.StartsAt.Format(time.RFC3339),
		EndsAt:        b.EndsAt.Format(time.RFC3339),
		ConfirmedAt:   b.CreatedAt.Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, bookingResp{OK: true, Booking: b})
}

// GetByCode handles GET /api/bookings/:code. Lookup is case-insensitive.
func (h *BookingHandler) GetByCode(c echo.Context) error {
	b, err := h.Sched.FindByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	return c.JSON(http.StatusOK, b)
}
