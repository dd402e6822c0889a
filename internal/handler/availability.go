package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/booking"
	"github.com/xtremegk/booking-api/internal/repository"
)

// AvailabilityHandler answers slot queries via the availability calculator.
type AvailabilityHandler struct {
	Calc *booking.Calculator
}

func NewAvailabilityHandler(calc *booking.Calculator) *AvailabilityHandler {
	return &AvailabilityHandler{Calc: calc}
}

type availabilityResp struct {
	Date      string   `json:"date"`
	ProductID string   `json:"productId"`
	VariantID string   `json:"variantId"`
	Qty       int      `json:"qty"`
	Duration  int      `json:"duration"`
	Slots     []string `json:"slots"`
}

// Get handles GET /api/availability?productId&variantId&date&qty. Slot
// starts are returned as "HH:MM" clock strings in the configured timezone.
// Quantity defaults to 1 when absent.
func (h *AvailabilityHandler) Get(c echo.Context) error {
	qty := 1
	if s := c.QueryParam("qty"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid qty"})
		}
		qty = n
	}

	av, err := h.Calc.ComputeSlots(
		c.QueryParam("productId"),
		c.QueryParam("variantId"),
		c.QueryParam("date"),
		qty,
	)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrProductNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid product"})
	case errors.Is(err, repository.ErrVariantNotFound):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid variant"})
	case errors.Is(err, booking.ErrInvalidPayload):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid payload"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability failed"})
	}

	slots := make([]string, 0, len(av.Slots))
	for _, s := range av.Slots {
		slots = append(slots, s.Format("15:04"))
	}
	return c.JSON(http.StatusOK, availabilityResp{
		Date:      av.Date,
		ProductID: av.ProductID,
		VariantID: av.VariantID,
		Qty:       av.Qty,
		Duration:  av.Duration,
		Slots:     slots,
	})
}
