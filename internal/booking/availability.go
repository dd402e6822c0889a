package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/repository"
)

// SlotStep is the spacing of candidate slot starts within operating hours.
const SlotStep = 30 * time.Minute

// Calculator computes open slots for a product/variant/date/quantity against
// the current booking store. It never mutates anything; results reflect the
// store state at call time.
type Calculator struct {
	catalog  *repository.CatalogRepo
	settings *repository.SettingsRepo
	store    *repository.BookingRepo
}

// NewCalculator wires a calculator to its read-only collaborators.
func NewCalculator(catalog *repository.CatalogRepo, settings *repository.SettingsRepo, store *repository.BookingRepo) *Calculator {
	return &Calculator{catalog: catalog, settings: settings, store: store}
}

// Availability is the result of a slot query. Duration is the occupied
// minutes per slot: the variant's billed minutes plus the product type's
// buffer. Slots holds candidate start times in ascending order.
type Availability struct {
	Date      string
	ProductID string
	VariantID string
	Qty       int
	Duration  int
	Slots     []time.Time
}

// ComputeSlots returns every slot start within the date's operating window
// at which the requested quantity still fits, walking the window in SlotStep
// increments. A candidate [s, s+duration] is open when it ends by closing
// time and the product's remaining capacity across all overlapping committed
// items covers qty. Zero-length or inverted windows yield no slots.
func (c *Calculator) ComputeSlots(productID, variantID, date string, qty int) (Availability, error) {
	if qty < 1 {
		return Availability{}, fmt.Errorf("%w: qty must be at least 1", ErrInvalidPayload)
	}
	product, variant, err := c.catalog.Resolve(productID, variantID)
	if err != nil {
		return Availability{}, err
	}
	loc := c.settings.Location()
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return Availability{}, fmt.Errorf("%w: bad date %q", ErrInvalidPayload, date)
	}

	s := c.settings.Current()
	duration := variant.Minutes + s.BufferFor(product.Type)
	window := s.Window(day.Weekday())
	open, err := atClock(day, window.Open, loc)
	if err != nil {
		return Availability{}, err
	}
	close, err := atClock(day, window.Close, loc)
	if err != nil {
		return Availability{}, err
	}

	occ := occupancies(c.store.OnDay(day, loc))
	capacity := s.CapacityFor(productID)
	dur := time.Duration(duration) * time.Minute

	var slots []time.Time
	for cursor := open; !cursor.Add(dur).After(close); cursor = cursor.Add(SlotStep) {
		if fits(capacity, occ, productID, cursor, cursor.Add(dur), qty) {
			slots = append(slots, cursor)
		}
	}
	return Availability{
		Date:      date,
		ProductID: productID,
		VariantID: variantID,
		Qty:       qty,
		Duration:  duration,
		Slots:     slots,
	}, nil
}

// occupancy is a flattened per-line-item view of a committed booking: which
// product it ties up, how many units, and over which interval.
type occupancy struct {
	productID  string
	qty        int
	start, end time.Time
}

func occupancies(bookings []model.Booking) []occupancy {
	var out []occupancy
	for _, b := range bookings {
		for _, it := range b.Items {
			out = append(out, occupancy{
				productID: it.ProductID,
				qty:       it.Qty,
				start:     b.StartsAt,
				end:       b.EndsAt,
			})
		}
	}
	return out
}

// fits is the capacity predicate shared by the slot walk and the scheduler's
// commit-time recheck: remaining capacity for productID over [start, end)
// must cover qty. Intervals overlap when start < o.end && end > o.start.
func fits(capacity int, occ []occupancy, productID string, start, end time.Time, qty int) bool {
	used := 0
	for _, o := range occ {
		if o.productID == productID && start.Before(o.end) && end.After(o.start) {
			used += o.qty
		}
	}
	return capacity-used >= qty
}

// atClock combines a calendar day with an "HH:MM" clock string in loc.
func atClock(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("bad clock time %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return time.Time{}, fmt.Errorf("bad clock time %q", hhmm)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("bad clock time %q", hhmm)
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, loc), nil
}
