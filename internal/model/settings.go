package model

import "time"

// OpenWindow is a daily operating window expressed as local clock times in
// "HH:MM" form. An empty or inverted window (close not after open) yields no
// bookable slots.
type OpenWindow struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// OpenHours holds the operating windows for regular weekdays and for the
// configured weekend day-set.
type OpenHours struct {
	Weekday OpenWindow `json:"weekday"`
	Weekend OpenWindow `json:"weekend"`
}

// Admin holds the staff credentials and the secret used to sign access
// tokens. PasswordHash is a bcrypt hash; plaintext passwords are never
// stored in the settings document.
type Admin struct {
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	JWTSecret    string `json:"jwtSecret"`
}

// Settings is the operator-editable configuration document. Defaults are
// applied once at load time (see repository.LoadSettings) so call sites can
// rely on every map lookup and field being meaningful. Resources maps a
// product id to its concurrent capacity (default 1), Buffers maps a product
// type to extra minutes per booking (default 0), AddOnFee is the per-unit
// fee in cents for items with the add-on flag, WeekendDays lists the days
// using the weekend window (default Saturday and Sunday) and Timezone is the
// IANA zone name for all date and slot arithmetic.
type Settings struct {
	OpenHours   OpenHours      `json:"openHours"`
	Resources   map[string]int `json:"resources"`
	Buffers     map[string]int `json:"buffers"`
	TaxRate     float64        `json:"taxRate"`
	AddOnFee    int64          `json:"addOnFeeCents"`
	WeekendDays []time.Weekday `json:"weekendDays"`
	Timezone    string         `json:"timezone"`
	Admin       Admin          `json:"admin"`
}

// CapacityFor returns the concurrent capacity for a product id.
func (s Settings) CapacityFor(productID string) int {
	if n, ok := s.Resources[productID]; ok && n > 0 {
		return n
	}
	return 1
}

// BufferFor returns the buffer minutes for a product type.
func (s Settings) BufferFor(productType string) int {
	return s.Buffers[productType]
}

// IsWeekend reports whether the given weekday uses the weekend window.
func (s Settings) IsWeekend(d time.Weekday) bool {
	for _, w := range s.WeekendDays {
		if w == d {
			return true
		}
	}
	return false
}

// Window returns the operating window for the given weekday.
func (s Settings) Window(d time.Weekday) OpenWindow {
	if s.IsWeekend(d) {
		return s.OpenHours.Weekend
	}
	return s.OpenHours.Weekday
}
