// Package money holds the currency arithmetic used by invoice
// reconciliation. Amounts are float64 rounded to 2 decimal places at every
// mutation step so drift cannot accumulate across repeated partial payments.
package money

import "math"

// Tolerance under which a remaining balance counts as settled.
const Tolerance = 0.01

// Round2 rounds to 2 decimal places (half away from zero).
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Settled reports whether a remaining amount is within Tolerance of zero.
func Settled(remaining float64) bool {
	return remaining <= Tolerance
}
