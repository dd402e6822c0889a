package model

import "time"

// Customer identifies who a booking belongs to. Free-form contact data,
// stored as supplied.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// LineItem is one product/variant entry inside a booking. AddOn marks the
// optional per-unit extra charged at the configured add-on fee.
type LineItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Qty       int    `json:"qty"`
	AddOn     bool   `json:"addOn,omitempty"`
}

// Booking is a committed reservation. ID (a UUID) and Code are assigned at
// commit time and never change or get reused; the only mutation permitted
// after commit is CheckedIn flipping false to true.
type Booking struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Customer      Customer   `json:"customer"`
	Items         []LineItem `json:"items"`
	SubtotalCents int64      `json:"subtotal"`
	TaxCents      int64      `json:"tax"`
	TotalCents    int64      `json:"total"`
	Status        string     `json:"status"`
	StartsAt      time.Time  `json:"startsAt"`
	EndsAt        time.Time  `json:"endsAt"`
	CheckedIn     bool       `json:"checkedIn"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// StatusConfirmed is the only booking status this service produces.
const StatusConfirmed = "confirmed"
