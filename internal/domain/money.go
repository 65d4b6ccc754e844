package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBillionsUSD renders a billion-USD amount as "$10,000B": rounded to
// whole billions with thousands separators.
func FormatBillionsUSD(d decimal.Decimal) string {
	return "$" + groupThousands(d.Round(0).String()) + "B"
}

// groupThousands inserts comma separators into a plain integer string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
