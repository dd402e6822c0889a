// Package booking implements the core of the service: the availability
// calculator and the booking scheduler. The calculator is a pure read of the
// store; the scheduler owns the atomic check-then-commit protocol and the
// check-in transition.
package booking

import "errors"

// ErrInvalidPayload is returned when a create request is missing its
// customer, items or start time, or when the request cannot be interpreted
// at all (bad date, bad quantity).
var ErrInvalidPayload = errors.New("invalid payload")

// ErrInvalidItem is returned when a line item's product or variant id does
// not resolve against the catalog, or its quantity is not positive.
var ErrInvalidItem = errors.New("invalid item")

// ErrSlotUnavailable is returned when the commit-time capacity recheck fails
// for at least one line item. The store is left untouched.
var ErrSlotUnavailable = errors.New("slot unavailable")
