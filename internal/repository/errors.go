// Package repository provides access to the service's persisted documents:
// the product catalog, the settings document and the booking store. Sentinel
// errors defined here let higher layers such as the scheduler and the HTTP
// handlers distinguish failure scenarios without string matching.
package repository

import "errors"

// ErrProductNotFound is returned when a product id does not resolve against
// the catalog. Handlers translate it into HTTP 400 on availability and
// booking requests.
var ErrProductNotFound = errors.New("product not found")

// ErrVariantNotFound is returned when a variant id does not resolve within
// its product.
var ErrVariantNotFound = errors.New("variant not found")

// ErrBookingNotFound is returned when no booking matches the requested code.
// Handlers translate it into HTTP 404.
var ErrBookingNotFound = errors.New("booking not found")

// ErrCodeTaken is returned by BookingRepo.Append when the booking's code is
// already in use. The scheduler regenerates the code and retries; codes are
// random, so collisions are rare but must be handled, not assumed away.
var ErrCodeTaken = errors.New("booking code already taken")
