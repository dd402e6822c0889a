package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/booking"
	"github.com/xtremegk/booking-api/internal/queue"
	"github.com/xtremegk/booking-api/internal/repository"
	queue_publisher "github.com/xtremegk/booking-api/internal/service"
)

// CheckinHandler lets staff record a customer's arrival. Routes using it
// must sit behind JWTAuth and RequireRole; the handler itself only trusts
// that the boundary passed.
type CheckinHandler struct {
	Sched *booking.Scheduler
}

func NewCheckinHandler(sched *booking.Scheduler) *CheckinHandler {
	return &CheckinHandler{Sched: sched}
}

type checkinReq struct {
	Code string `json:"code"`
}

// CheckIn handles POST /api/staff/checkin. Idempotent: repeating the call
// for an already checked-in booking succeeds with the flag still true.
func (h *CheckinHandler) CheckIn(c echo.Context) error {
	var req checkinReq
	if err := c.Bind(&req); err != nil || req.Code == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	}

	b, err := h.Sched.CheckIn(req.Code)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}

	_ = queue_publisher.PublishBookingCheckedIn(c.Request().Context(), queue.BookingCheckedInEvent{
		BookingID:   b.ID,
		Code:        b.Code,
		CheckedInAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, bookingResp{OK: true, Booking: b})
}
