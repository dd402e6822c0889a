package repository

import (
	"testing"
	"time"

	"github.com/xtremegk/booking-api/internal/model"
)

func TestSettingsDefaults(t *testing.T) {
	t.Parallel()

	repo, err := NewSettings(model.Settings{
		OpenHours: model.OpenHours{
			Weekday: model.OpenWindow{Open: "09:00", Close: "17:00"},
			Weekend: model.OpenWindow{Open: "10:00", Close: "16:00"},
		},
		TaxRate: 0.08,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s := repo.Current()

	if got := s.CapacityFor("anything"); got != 1 {
		t.Fatalf("expected default capacity 1, got %d", got)
	}
	if got := s.BufferFor("anything"); got != 0 {
		t.Fatalf("expected default buffer 0, got %d", got)
	}
	if s.AddOnFee != 200 {
		t.Fatalf("expected default add-on fee 200, got %d", s.AddOnFee)
	}
	if !s.IsWeekend(time.Saturday) || !s.IsWeekend(time.Sunday) || s.IsWeekend(time.Monday) {
		t.Fatalf("expected default weekend Sat+Sun, got %v", s.WeekendDays)
	}
	if repo.Location() != time.UTC {
		t.Fatalf("expected default timezone UTC, got %v", repo.Location())
	}
	if w := s.Window(time.Sunday); w.Open != "10:00" {
		t.Fatalf("expected Sunday to use the weekend window, got %+v", w)
	}
	if w := s.Window(time.Wednesday); w.Open != "09:00" {
		t.Fatalf("expected Wednesday to use the weekday window, got %+v", w)
	}
}

func TestSettingsExplicitValues(t *testing.T) {
	t.Parallel()

	repo, err := NewSettings(model.Settings{
		Resources:   map[string]int{"kart": 3},
		Buffers:     map[string]int{"track": 15},
		AddOnFee:    500,
		WeekendDays: []time.Weekday{time.Friday, time.Saturday},
		Timezone:    "Europe/Madrid",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	s := repo.Current()

	if got := s.CapacityFor("kart"); got != 3 {
		t.Fatalf("expected capacity 3, got %d", got)
	}
	if got := s.BufferFor("track"); got != 15 {
		t.Fatalf("expected buffer 15, got %d", got)
	}
	if s.IsWeekend(time.Sunday) || !s.IsWeekend(time.Friday) {
		t.Fatalf("expected configured weekend Fri+Sat, got %v", s.WeekendDays)
	}
	if repo.Location().String() != "Europe/Madrid" {
		t.Fatalf("expected Europe/Madrid, got %v", repo.Location())
	}
}

func TestSettingsBadTimezone(t *testing.T) {
	t.Parallel()

	if _, err := NewSettings(model.Settings{Timezone: "Mars/Olympus"}); err == nil {
		t.Fatalf("expected an error for an unknown timezone")
	}
}
