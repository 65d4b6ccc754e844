// Package profit derives display-ready value estimates for filtered records.
// The band is a fixed ±40% multiplier around the point estimate, not a
// sampled distribution.
package profit

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/domain"
)

var (
	bandLowFactor  = decimal.RequireFromString("0.6")
	bandHighFactor = decimal.RequireFromString("1.4")
)

// Band returns {0.6×value, 1.4×value} for the record, exact in decimal.
func Band(a domain.Asteroid) domain.ProfitBand {
	return domain.ProfitBand{
		Low:  a.EstimatedValue.Mul(bandLowFactor),
		High: a.EstimatedValue.Mul(bandHighFactor),
	}
}

// Metric is one profit widget: the record name, its formatted point value,
// and the formatted band as the sub-label.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Band  string `json:"band"`
}

// Metrics builds one widget per record, in input order.
func Metrics(records []domain.Asteroid) []Metric {
	return lo.Map(records, func(a domain.Asteroid, _ int) Metric {
		band := Band(a)
		return Metric{
			Label: a.Name,
			Value: domain.FormatBillionsUSD(a.EstimatedValue),
			Band:  formatBand(band),
		}
	})
}

func formatBand(b domain.ProfitBand) string {
	return fmt.Sprintf("(%s – %s)",
		domain.FormatBillionsUSD(b.Low),
		domain.FormatBillionsUSD(b.High))
}
