package services

import "math"

// Amounts are stored as integer cents and only converted back to a decimal
// number at the JSON boundary, so sums never accumulate float error.

// ToCents converts a decimal amount to cents, rounding half away from zero
// on the third decimal place.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts stored cents back to a two-decimal amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
