package repository

import (
	"fmt"
	"time"

	"github.com/xtremegk/booking-api/internal/model"
	"github.com/xtremegk/booking-api/internal/store"
)

// SettingsRepo serves the operator settings document. Defaults are applied
// once at load time so the rest of the code never needs fallback logic at
// call sites: missing capacity means 1, missing buffer means 0, missing
// weekend day-set means Saturday and Sunday, missing timezone means UTC.
type SettingsRepo struct {
	settings model.Settings
	loc      *time.Location
}

// NewSettings builds a SettingsRepo from an in-memory settings value,
// applying the same defaults as LoadSettings. Used directly by tests.
func NewSettings(s model.Settings) (*SettingsRepo, error) {
	applyDefaults(&s)
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("settings timezone %q: %w", s.Timezone, err)
	}
	return &SettingsRepo{settings: s, loc: loc}, nil
}

// LoadSettings reads the settings document at path and applies defaults.
func LoadSettings(path string) (*SettingsRepo, error) {
	var s model.Settings
	if err := store.ReadDocument(path, &s); err != nil {
		return nil, err
	}
	return NewSettings(s)
}

func applyDefaults(s *model.Settings) {
	if s.Resources == nil {
		s.Resources = map[string]int{}
	}
	if s.Buffers == nil {
		s.Buffers = map[string]int{}
	}
	if s.AddOnFee == 0 {
		s.AddOnFee = 200
	}
	if len(s.WeekendDays) == 0 {
		s.WeekendDays = []time.Weekday{time.Saturday, time.Sunday}
	}
	if s.Timezone == "" {
		s.Timezone = "UTC"
	}
}

// Current returns the settings snapshot.
func (r *SettingsRepo) Current() model.Settings { return r.settings }

// Location returns the configured timezone. All date parsing and slot
// arithmetic uses this location so results do not depend on the host's
// ambient zone.
func (r *SettingsRepo) Location() *time.Location { return r.loc }
