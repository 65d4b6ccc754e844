package domain

import "github.com/shopspring/decimal"

// SpectralType classifies an asteroid's surface composition. The set is open:
// the catalog only happens to contain the five types below.
type SpectralType string

const (
	SpectralM SpectralType = "M" // metallic
	SpectralC SpectralType = "C" // carbonaceous
	SpectralB SpectralType = "B"
	SpectralV SpectralType = "V"
	SpectralS SpectralType = "S" // silicaceous
)

// Asteroid is one catalog record. Orbital elements are raw observation values
// and are not validated against physical ranges. EstimatedValue is a point
// estimate in billions of USD with no declared confidence interval.
type Asteroid struct {
	Name            string          `json:"name"`
	SemiMajorAxisAU float64         `json:"semi_major_axis_au"`
	Eccentricity    float64         `json:"eccentricity"`
	InclinationDeg  float64         `json:"inclination_deg"`
	DiameterKm      float64         `json:"diameter_km"`
	EstimatedValue  decimal.Decimal `json:"est_value_billion_usd"`
	SpectralType    SpectralType    `json:"spectral_type"`
	DeltaVKmPerSec  float64         `json:"delta_v_km_s"`
}

// FilterCriteria is the control state of one render pass. It is rebuilt from
// the request on every render and never persisted.
type FilterCriteria struct {
	AcceptedTypes []SpectralType  `json:"accepted_types"`
	MinDiameterKm float64         `json:"min_diameter_km"`
	MinValue      decimal.Decimal `json:"min_value_billion_usd"`
	MaxDeltaV     float64         `json:"max_delta_v_km_s"`
}

// Accepts reports whether the spectral type is in the accepted set.
// An empty set accepts nothing.
func (c FilterCriteria) Accepts(t SpectralType) bool {
	for _, accepted := range c.AcceptedTypes {
		if accepted == t {
			return true
		}
	}
	return false
}

// ProfitBand is a fixed percentage range around a point value estimate,
// in billions of USD. It is derived per render and never stored.
type ProfitBand struct {
	Low  decimal.Decimal `json:"low_billion_usd"`
	High decimal.Decimal `json:"high_billion_usd"`
}
