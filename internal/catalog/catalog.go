// Package catalog holds the compiled-in asteroid dataset. The table is a
// placeholder for a merged SBDB/Kaggle export; values are rough published
// estimates, not mission-grade data.
package catalog

import (
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/domain"
)

var (
	buildOnce sync.Once
	records   []domain.Asteroid
)

// build constructs the catalog exactly once. Estimated values are parsed into
// decimals here so repeated renders share the same in-memory records.
func build() {
	records = []domain.Asteroid{
		{
			Name:            "16 Psyche",
			SemiMajorAxisAU: 2.92,
			Eccentricity:    0.14,
			InclinationDeg:  7.0,
			DiameterKm:      226,
			EstimatedValue:  decimal.RequireFromString("10000"),
			SpectralType:    domain.SpectralM,
			DeltaVKmPerSec:  5.5,
		},
		{
			Name:            "Ryugu",
			SemiMajorAxisAU: 1.19,
			Eccentricity:    0.19,
			InclinationDeg:  5.9,
			DiameterKm:      0.9,
			EstimatedValue:  decimal.RequireFromString("8.8"),
			SpectralType:    domain.SpectralC,
			DeltaVKmPerSec:  4.6,
		},
		{
			Name:            "Bennu",
			SemiMajorAxisAU: 1.13,
			Eccentricity:    0.20,
			InclinationDeg:  6.0,
			DiameterKm:      0.49,
			EstimatedValue:  decimal.RequireFromString("0.67"),
			SpectralType:    domain.SpectralB,
			DeltaVKmPerSec:  5.1,
		},
		{
			Name:            "1 Ceres",
			SemiMajorAxisAU: 2.77,
			Eccentricity:    0.08,
			InclinationDeg:  10.6,
			DiameterKm:      946,
			EstimatedValue:  decimal.RequireFromString("1000"),
			SpectralType:    domain.SpectralC,
			DeltaVKmPerSec:  9.0,
		},
		{
			Name:            "4 Vesta",
			SemiMajorAxisAU: 2.36,
			Eccentricity:    0.10,
			InclinationDeg:  7.1,
			DiameterKm:      525,
			EstimatedValue:  decimal.RequireFromString("500"),
			SpectralType:    domain.SpectralV,
			DeltaVKmPerSec:  7.8,
		},
		{
			Name:            "433 Eros",
			SemiMajorAxisAU: 1.46,
			Eccentricity:    0.22,
			InclinationDeg:  10.8,
			DiameterKm:      16.8,
			EstimatedValue:  decimal.RequireFromString("0.1"),
			SpectralType:    domain.SpectralS,
			DeltaVKmPerSec:  5.8,
		},
	}
}

// All returns the full catalog. The slice is built once for the process
// lifetime and shared between callers; treat it as read-only.
func All() []domain.Asteroid {
	buildOnce.Do(build)
	return records
}

// ByName looks up a record by its unique name.
func ByName(name string) (domain.Asteroid, bool) {
	return lo.Find(All(), func(a domain.Asteroid) bool {
		return a.Name == name
	})
}

// SpectralTypes returns the distinct spectral types observed in the catalog,
// in first-seen order. This set drives the filter multi-select default.
func SpectralTypes() []domain.SpectralType {
	return lo.Uniq(lo.Map(All(), func(a domain.Asteroid, _ int) domain.SpectralType {
		return a.SpectralType
	}))
}
