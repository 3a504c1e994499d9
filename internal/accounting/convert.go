// Package accounting holds the pure intake arithmetic: unit conversion,
// daily and weekly totals, goal progress and streak walking. Nothing here
// touches storage.
package accounting

import (
	"math"

	"github.com/manav03panchal/hydrate/internal/model"
)

// Conversion factors to ounces, the canonical unit.
const (
	OzPerMl  = 0.033814
	OzPerCup = 8.0
)

// ToOunces converts amount in unit to ounces. Unknown units are treated
// as ounces.
func ToOunces(amount float64, unit model.Unit) float64 {
	switch unit {
	case model.UnitMl:
		return amount * OzPerMl
	case model.UnitCups:
		return amount * OzPerCup
	default:
		return amount
	}
}

// FromOunces converts an ounce amount to unit.
func FromOunces(oz float64, unit model.Unit) float64 {
	switch unit {
	case model.UnitMl:
		return oz / OzPerMl
	case model.UnitCups:
		return oz / OzPerCup
	default:
		return oz
	}
}

// Convert converts amount between two units via ounces.
func Convert(amount float64, from, to model.Unit) float64 {
	if from == to {
		return amount
	}
	return FromOunces(ToOunces(amount, from), to)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HydrationPoints returns round2(amount * multiplier).
func HydrationPoints(amount, multiplier float64) float64 {
	return Round2(amount * multiplier)
}
