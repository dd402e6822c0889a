package booking

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/xtremegk/booking-api/internal/clock"
	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/repository"
	"github.com/xtremegk/booking-api/internal/utils"
)

// maxCodeAttempts bounds the regenerate-on-collision loop for booking codes.
const maxCodeAttempts = 10

// Scheduler validates, prices and atomically commits bookings, and owns the
// check-in transition. All mutations run inside the store's per-product
// commit locks so two concurrent callers can never both pass the capacity
// check for the same slot.
type Scheduler struct {
	catalog  *repository.CatalogRepo
	settings *repository.SettingsRepo
	store    *repository.BookingRepo
	clock    clock.Clock
	newCode  func() string
}

// NewScheduler wires a scheduler to its collaborators.
func NewScheduler(catalog *repository.CatalogRepo, settings *repository.SettingsRepo, store *repository.BookingRepo, clk clock.Clock, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		catalog:  catalog,
		settings: settings,
		store:    store,
		clock:    clk,
		newCode:  utils.NewBookingCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type SchedulerOption func(*Scheduler)

// WithCodeGenerator overrides the booking code source (useful for tests).
func WithCodeGenerator(fn func() string) SchedulerOption {
	return func(s *Scheduler) {
		if fn != nil {
			s.newCode = fn
		}
	}
}

// CreateBookingInput carries a booking request into the scheduler.
type CreateBookingInput struct {
	Customer  model.Customer
	Items     []model.LineItem
	StartTime time.Time
}

// CreateBooking validates and prices the request, then commits it under the
// per-product locks: capacity is re-evaluated against the store's current
// contents for every item before anything is written, and a fresh id and
// unique code are assigned inside the same critical section. On any failure
// the store is left untouched.
//
// The booked interval ends at StartTime plus the sum of the items' variant
// minutes, with quantity and buffers left out. Capacity checks use the
// buffered per-item duration, so the two figures differ on purpose.
func (s *Scheduler) CreateBooking(in CreateBookingInput) (model.Booking, error) {
	if (in.Customer == model.Customer{}) || len(in.Items) == 0 || in.StartTime.IsZero() {
		return model.Booking{}, ErrInvalidPayload
	}

	settings := s.settings.Current()

	type pricedItem struct {
		item    model.LineItem
		product model.Product
		variant model.Variant
	}
	priced := make([]pricedItem, 0, len(in.Items))
	productIDs := make([]string, 0, len(in.Items))

	var subtotal int64
	minutes := 0
	for _, it := range in.Items {
		if it.Qty < 1 {
			return model.Booking{}, fmt.Errorf("%w: qty must be at least 1", ErrInvalidItem)
		}
		p, v, err := s.catalog.Resolve(it.ProductID, it.VariantID)
		if err != nil {
			return model.Booking{}, fmt.Errorf("%w: %s/%s", ErrInvalidItem, it.ProductID, it.VariantID)
		}
		subtotal += v.PriceCents * int64(it.Qty)
		if it.AddOn {
			subtotal += settings.AddOnFee * int64(it.Qty)
		}
		minutes += v.Minutes
		priced = append(priced, pricedItem{item: it, product: p, variant: v})
		productIDs = append(productIDs, it.ProductID)
	}

	tax := roundHalfUp(float64(subtotal) * settings.TaxRate)
	total := subtotal + tax

	startsAt := in.StartTime.UTC()
	endsAt := startsAt.Add(time.Duration(minutes) * time.Minute)
	loc := s.settings.Location()

	var committed model.Booking
	err := s.store.WithProductLock(productIDs, func() error {
		// Recheck every item against the store as it is right now. Another
		// commit may have landed between the caller's slot query and here.
		occ := occupancies(s.store.OnDay(startsAt, loc))
		for _, pi := range priced {
			dur := time.Duration(pi.variant.Minutes+settings.BufferFor(pi.product.Type)) * time.Minute
			if !fits(settings.CapacityFor(pi.item.ProductID), occ, pi.item.ProductID, startsAt, startsAt.Add(dur), pi.item.Qty) {
				return ErrSlotUnavailable
			}
		}

		b := model.Booking{
			ID:            uuid.New().String(),
			Customer:      in.Customer,
			Items:         in.Items,
			SubtotalCents: subtotal,
			TaxCents:      tax,
			TotalCents:    total,
			Status:        model.StatusConfirmed,
			StartsAt:      startsAt,
			EndsAt:        endsAt,
			CheckedIn:     false,
			CreatedAt:     s.clock.Now(),
		}
		for attempt := 0; attempt < maxCodeAttempts; attempt++ {
			b.Code = s.newCode()
			err := s.store.Append(b)
			if err == repository.ErrCodeTaken {
				continue
			}
			if err != nil {
				return err
			}
			committed = b
			return nil
		}
		return fmt.Errorf("could not allocate a unique booking code after %d attempts", maxCodeAttempts)
	})
	if err != nil {
		return model.Booking{}, err
	}
	return committed, nil
}

// FindByCode looks a booking up by its code, case-insensitively.
func (s *Scheduler) FindByCode(code string) (model.Booking, error) {
	return s.store.FindByCode(code)
}

// CheckIn marks the booking with the given code as arrived. Idempotent:
// repeating the call succeeds and changes nothing further.
func (s *Scheduler) CheckIn(code string) (model.Booking, error) {
	return s.store.SetCheckedIn(code)
}

// roundHalfUp rounds to the nearest cent with ties going up, matching how
// the tax amount is presented to customers.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
