package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/xtremegk/booking-api/internal/booking"
	"github.com/xtremegk/booking-api/internal/clock"
	"github.com/xtremegk/booking-api/internal/config"
	"github.com/xtremegk/booking-api/internal/handler"
	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/repository"
	"github.com/xtremegk/booking-api/internal/router"
	"github.com/xtremegk/booking-api/internal/utils"
)

const testSecret = "test-secret"

// newTestServer wires the full route table against real repositories in a
// temp directory. Redis is nil, so rate limiting and caching are disabled.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	hash, err := utils.HashPassword("pit-lane", 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	settings, err := repository.NewSettings(model.Settings{
		OpenHours: model.OpenHours{
			Weekday: model.OpenWindow{Open: "09:00", Close: "17:00"},
			Weekend: model.OpenWindow{Open: "10:00", Close: "16:00"},
		},
		Resources: map[string]int{"kart": 1},
		Buffers:   map[string]int{"track": 15},
		TaxRate:   0.08,
		Timezone:  "UTC",
		Admin: model.Admin{
			Email:        "staff@example.com",
			PasswordHash: hash,
			JWTSecret:    testSecret,
		},
	})
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	catalog := repository.NewCatalog([]model.Product{
		{ID: "kart", Name: "Kart Session", Type: "track", Variants: []model.Variant{
			{ID: "v45", Minutes: 45, PriceCents: 4500},
		}},
	})
	store := repository.NewBookingRepo(filepath.Join(t.TempDir(), "bookings.json"))

	calc := booking.NewCalculator(catalog, settings, store)
	sched := booking.NewScheduler(catalog, settings, store, clock.NewSystem())

	e := echo.New()
	router.Register(e, router.Handlers{
		Catalog:      handler.NewCatalogHandler(catalog),
		Availability: handler.NewAvailabilityHandler(calc),
		Booking:      handler.NewBookingHandler(sched),
		Checkin:      handler.NewCheckinHandler(sched),
		Auth:         handler.NewAuthHandler(config.Config{AccessTTLMin: 60}, settings),
	}, testSecret, nil)
	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func staffToken(t *testing.T) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, "staff@example.com", handler.RoleAdmin, 60)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok.Token
}

func TestProductsEndpoint(t *testing.T) {
	t.Parallel()
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/products", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var products []model.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 1 || products[0].ID != "kart" {
		t.Fatalf("unexpected catalog: %+v", products)
	}
}

func TestAvailabilityEndpoint(t *testing.T) {
	t.Parallel()
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/api/availability?productId=kart&variantId=v45&date=2025-03-10", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Qty      int      `json:"qty"`
		Duration int      `json:"duration"`
		Slots    []string `json:"slots"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Qty != 1 {
		t.Fatalf("expected qty to default to 1, got %d", resp.Qty)
	}
	if resp.Duration != 60 {
		t.Fatalf("expected duration 60, got %d", resp.Duration)
	}
	if len(resp.Slots) != 15 || resp.Slots[0] != "09:00" || resp.Slots[14] != "16:00" {
		t.Fatalf("unexpected slot grid: %v", resp.Slots)
	}

	rec = doJSON(e, http.MethodGet, "/api/availability?productId=nope&variantId=v45&date=2025-03-10", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown product, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodGet, "/api/availability?productId=kart&variantId=nope&date=2025-03-10", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown variant, got %d", rec.Code)
	}
}

func TestBookingLifecycle(t *testing.T) {
	t.Parallel()
	e := newTestServer(t)

	const createBody = `{
		"customer": {"name": "Dana Reyes", "email": "dana@example.com"},
		"items": [{"productId": "kart", "variantId": "v45", "qty": 1}],
		"startTime": "2025-03-10T10:00:00Z"
	}`

	rec := doJSON(e, http.MethodPost, "/api/bookings", createBody, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		OK      bool          `json:"ok"`
		Booking model.Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !created.OK || created.Booking.Code == "" {
		t.Fatalf("unexpected create response: %s", rec.Body.String())
	}

	// Same capacity-1 slot again: rejected without touching the store.
	rec = doJSON(e, http.MethodPost, "/api/bookings", createBody, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for a full slot, got %d: %s", rec.Code, rec.Body.String())
	}

	// Lookup is case-insensitive.
	rec = doJSON(e, http.MethodGet, "/api/bookings/"+strings.ToLower(created.Booking.Code), "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on lookup, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(e, http.MethodGet, "/api/bookings/XGK-MISSIN", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown code, got %d", rec.Code)
	}

	// Check-in requires a staff token.
	checkinBody := `{"code": "` + created.Booking.Code + `"}`
	rec = doJSON(e, http.MethodPost, "/api/staff/checkin", checkinBody, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	token := staffToken(t)
	rec = doJSON(e, http.MethodPost, "/api/staff/checkin", checkinBody, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on check-in, got %d: %s", rec.Code, rec.Body.String())
	}
	var checked struct {
		Booking model.Booking `json:"booking"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &checked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !checked.Booking.CheckedIn {
		t.Fatalf("expected checkedIn true")
	}

	// Repeating the call succeeds with the flag still set.
	rec = doJSON(e, http.MethodPost, "/api/staff/checkin", checkinBody, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected idempotent 200, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/staff/checkin", `{"code": "XGK-MISSIN"}`, token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown code, got %d", rec.Code)
	}
}

func TestBookingValidation(t *testing.T) {
	t.Parallel()
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/bookings", `{"items": []}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty payload, got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/bookings", `{
		"customer": {"name": "Dana"},
		"items": [{"productId": "kart", "variantId": "nope", "qty": 1}],
		"startTime": "2025-03-10T10:00:00Z"
	}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad item, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(e, http.MethodPost, "/api/bookings", `{
		"customer": {"name": "Dana"},
		"items": [{"productId": "kart", "variantId": "v45", "qty": 1}],
		"startTime": "next tuesday"
	}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad start time, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	t.Parallel()
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"email": "staff@example.com", "password": "pit-lane"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("expected a token")
	}

	// The issued token passes the check-in gate.
	rec = doJSON(e, http.MethodPost, "/api/staff/checkin", `{"code": "XGK-MISSIN"}`, resp.Token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected issued token to authenticate (404 for unknown code), got %d", rec.Code)
	}

	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email": "staff@example.com", "password": "wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", rec.Code)
	}
	rec = doJSON(e, http.MethodPost, "/api/auth/login", `{"email": "other@example.com", "password": "pit-lane"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", rec.Code)
	}
}
