package utils

import "crypto/rand"

// codeAlphabet deliberately contains only uppercase letters and digits so
// codes survive being read over the phone or typed from a printout.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codePrefix brands every booking code; the random tail follows it.
const codePrefix = "XGK-"

const codeLength = 6

// NewBookingCode returns a fresh candidate booking code such as "XGK-7QP2A9".
// Uniqueness is NOT guaranteed here: the booking store rejects duplicates at
// append time and the scheduler regenerates on collision.
func NewBookingCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken; there is
		// nothing sensible to fall back to.
		panic(err)
	}
	out := make([]byte, codeLength)
	for i, b := range buf {
		out[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return codePrefix + string(out)
}
