package api

import (
	"math"
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/catalog"
	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/screen"
)

// criteriaFromQuery rebuilds the filter criteria from request query
// parameters. Missing or malformed values fall back to the defaults, and the
// result is clamped to the slider bounds. The "applied" marker distinguishes
// a submitted form with nothing checked (empty type set) from a first visit,
// which selects every observed type.
func criteriaFromQuery(q url.Values) domain.FilterCriteria {
	types := catalog.SpectralTypes()
	if q.Has("applied") || q.Has("type") {
		types = nil
		for _, raw := range q["type"] {
			if raw != "" {
				types = append(types, domain.SpectralType(raw))
			}
		}
	}

	c := screen.Defaults(types)
	if f, ok := queryFloat(q, "min_diameter"); ok {
		c.MinDiameterKm = f
	}
	if v := q.Get("min_value"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			c.MinValue = d
		}
	}
	if f, ok := queryFloat(q, "max_dv"); ok {
		c.MaxDeltaV = f
	}

	return screen.Clamp(c)
}

func queryFloat(q url.Values, key string) (float64, bool) {
	v := q.Get(key)
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
