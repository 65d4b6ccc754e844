// Package screen filters the catalog against user-chosen constraints.
package screen

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/domain"
)

// Slider bounds and defaults for the three numeric constraints. These match
// the planner's sidebar controls and are fixed for all sessions.
const (
	MinDiameterFloor     = 0.1
	MinDiameterCeil      = 1000.0
	DefaultMinDiameterKm = 0.5

	MaxDeltaVFloor   = 4.0
	MaxDeltaVCeil    = 15.0
	DefaultMaxDeltaV = 7.0
)

var (
	MinValueFloor   = decimal.RequireFromString("0.1")
	MinValueCeil    = decimal.RequireFromString("20000")
	DefaultMinValue = decimal.RequireFromString("1.0")
)

// Defaults returns the criteria applied before the user touches any control:
// the given spectral types and the default slider positions.
func Defaults(types []domain.SpectralType) domain.FilterCriteria {
	return domain.FilterCriteria{
		AcceptedTypes: types,
		MinDiameterKm: DefaultMinDiameterKm,
		MinValue:      DefaultMinValue,
		MaxDeltaV:     DefaultMaxDeltaV,
	}
}

// Clamp pins the numeric thresholds to the slider bounds. The accepted type
// set is left as given; the type universe is open.
func Clamp(c domain.FilterCriteria) domain.FilterCriteria {
	c.MinDiameterKm = clampFloat(c.MinDiameterKm, MinDiameterFloor, MinDiameterCeil)
	c.MaxDeltaV = clampFloat(c.MaxDeltaV, MaxDeltaVFloor, MaxDeltaVCeil)

	if c.MinValue.LessThan(MinValueFloor) {
		c.MinValue = MinValueFloor
	} else if c.MinValue.GreaterThan(MinValueCeil) {
		c.MinValue = MinValueCeil
	}
	return c
}

func clampFloat(v, floor, ceil float64) float64 {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}

// Apply returns the subsequence of records satisfying every predicate:
// spectral type in the accepted set, diameter and value at or above their
// minimums, delta-v at or below its maximum. Original order is preserved.
// An empty accepted set yields an empty result.
func Apply(records []domain.Asteroid, c domain.FilterCriteria) []domain.Asteroid {
	return lo.Filter(records, func(a domain.Asteroid, _ int) bool {
		return matches(a, c)
	})
}

func matches(a domain.Asteroid, c domain.FilterCriteria) bool {
	return c.Accepts(a.SpectralType) &&
		a.DiameterKm >= c.MinDiameterKm &&
		a.EstimatedValue.GreaterThanOrEqual(c.MinValue) &&
		a.DeltaVKmPerSec <= c.MaxDeltaV
}
