package app

import "math"

// MinorUnits converts an amount in major currency units to minor units
// (cents), rounding to the nearest whole unit.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
