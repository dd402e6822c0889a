package repository

import (
	"errors"
	"io/fs"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/store"
)

// BookingRepo is the authoritative booking store. Bookings live in memory in
// creation order and every mutation is mirrored to bookings.json with an
// atomic replace before it becomes visible, so a failed write never leaves
// the store half-updated and the collection survives a restart.
//
// Two locking layers close the read-modify-write races:
//
//   - mu guards the in-memory collection and the document file. Append and
//     SetCheckedIn hold it exclusively for their whole read-check-write
//     cycle; readers take it shared.
//   - WithProductLock serializes whole commit protocols per product id, so
//     two concurrent createBooking calls for the same product cannot both
//     pass the capacity check before either appends. Unrelated products
//     never contend.
type BookingRepo struct {
	path string

	mu       sync.RWMutex
	bookings []model.Booking
	byCode   map[string]int // normalized code -> index into bookings

	lockMu   sync.Mutex
	resource map[string]*sync.Mutex // product id -> commit lock
}

// NewBookingRepo builds an empty store persisting to path. Used by tests;
// production code goes through LoadBookings.
func NewBookingRepo(path string) *BookingRepo {
	return &BookingRepo{
		path:     path,
		byCode:   map[string]int{},
		resource: map[string]*sync.Mutex{},
	}
}

// LoadBookings opens the booking document at path. A missing document is an
// empty store, not an error.
func LoadBookings(path string) (*BookingRepo, error) {
	r := NewBookingRepo(path)
	var bookings []model.Booking
	err := store.ReadDocument(path, &bookings)
	if err != nil {
		if isNotExist(err) {
			return r, nil
		}
		return nil, err
	}
	r.bookings = bookings
	for i, b := range bookings {
		r.byCode[normalizeCode(b.Code)] = i
	}
	return r, nil
}

// Snapshot returns a copy of all bookings in creation order. Safe to use
// unsynchronized by read-only callers such as the availability calculator.
func (r *BookingRepo) Snapshot() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// OnDay returns the bookings whose start falls on the same calendar day as
// day in the given location.
func (r *BookingRepo) OnDay(day time.Time, loc *time.Location) []model.Booking {
	y, m, d := day.In(loc).Date()
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Booking
	for _, b := range r.bookings {
		by, bm, bd := b.StartsAt.In(loc).Date()
		if by == y && bm == m && bd == d {
			out = append(out, b)
		}
	}
	return out
}

// FindByCode looks a booking up by its code, case-insensitively.
func (r *BookingRepo) FindByCode(code string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byCode[normalizeCode(code)]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return r.bookings[i], nil
}

// Append persists a new booking. It fails with ErrCodeTaken when the code is
// already in use so the caller can regenerate; any persistence failure leaves
// the in-memory collection untouched.
func (r *BookingRepo) Append(b model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeCode(b.Code)
	if _, exists := r.byCode[key]; exists {
		return ErrCodeTaken
	}
	next := append(append([]model.Booking{}, r.bookings...), b)
	if err := store.WriteDocument(r.path, next); err != nil {
		return err
	}
	r.bookings = next
	r.byCode[key] = len(next) - 1
	return nil
}

// SetCheckedIn marks the booking with the given code as checked in and
// returns the updated record. Idempotent: an already checked-in booking is
// returned unchanged. The flag is never cleared again.
func (r *BookingRepo) SetCheckedIn(code string) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.byCode[normalizeCode(code)]
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	if r.bookings[i].CheckedIn {
		return r.bookings[i], nil
	}
	next := make([]model.Booking, len(r.bookings))
	copy(next, r.bookings)
	next[i].CheckedIn = true
	if err := store.WriteDocument(r.path, next); err != nil {
		return model.Booking{}, err
	}
	r.bookings = next
	return next[i], nil
}

// WithProductLock runs fn while holding the commit lock of every given
// product id. Ids are deduplicated and acquired in sorted order so two
// callers locking overlapping product sets cannot deadlock.
func (r *BookingRepo) WithProductLock(productIDs []string, fn func() error) error {
	ids := dedupeSorted(productIDs)
	locks := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		locks = append(locks, r.resourceLock(id))
	}
	for _, l := range locks {
		l.Lock()
	}
	defer func() {
		for i := len(locks) - 1; i >= 0; i-- {
			locks[i].Unlock()
		}
	}()
	return fn()
}

func (r *BookingRepo) resourceLock(productID string) *sync.Mutex {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()
	l, ok := r.resource[productID]
	if !ok {
		l = &sync.Mutex{}
		r.resource[productID] = l
	}
	return l
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
