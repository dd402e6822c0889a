// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a booking commit succeeds. It
// carries enough for downstream consumers to log, notify, or feed analytics
// without reading the booking store.
type BookingConfirmedEvent struct {
	BookingID     string `json:"booking_id"`
	Code          string `json:"code"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Items         int    `json:"items"`
	TotalCents    int64  `json:"total_cents"`
	StartsAt      string `json:"starts_at"`
	EndsAt        string `json:"ends_at"`
	ConfirmedAt   string `json:"confirmed_at"`
}

// BookingCheckedInEvent is published when staff confirm a customer's
// arrival.
type BookingCheckedInEvent struct {
	BookingID   string `json:"booking_id"`
	Code        string `json:"code"`
	CheckedInAt string `json:"checked_in_at"`
}
