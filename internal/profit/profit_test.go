package profit

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/catalog"
	"github.com/astromine/planner/internal/domain"
)

func TestBandPsyche(t *testing.T) {
	psyche, ok := catalog.ByName("16 Psyche")
	if !ok {
		t.Fatal("16 Psyche missing from catalog")
	}

	band := Band(psyche)
	if !band.Low.Equal(decimal.RequireFromString("6000")) {
		t.Errorf("low = %s, want 6000", band.Low)
	}
	if !band.High.Equal(decimal.RequireFromString("14000")) {
		t.Errorf("high = %s, want 14000", band.High)
	}
}

func TestBandExactFactors(t *testing.T) {
	for _, a := range catalog.All() {
		band := Band(a)

		wantLow := a.EstimatedValue.Mul(decimal.RequireFromString("0.6"))
		wantHigh := a.EstimatedValue.Mul(decimal.RequireFromString("1.4"))
		if !band.Low.Equal(wantLow) {
			t.Errorf("%s: low = %s, want %s", a.Name, band.Low, wantLow)
		}
		if !band.High.Equal(wantHigh) {
			t.Errorf("%s: high = %s, want %s", a.Name, band.High, wantHigh)
		}
	}
}

func TestBandFractionalValue(t *testing.T) {
	// Ryugu: 8.8 → 5.28 / 12.32, no float drift.
	ryugu, _ := catalog.ByName("Ryugu")
	band := Band(ryugu)
	if band.Low.String() != "5.28" {
		t.Errorf("Ryugu low = %s, want 5.28", band.Low)
	}
	if band.High.String() != "12.32" {
		t.Errorf("Ryugu high = %s, want 12.32", band.High)
	}
}

func TestMetrics(t *testing.T) {
	psyche, _ := catalog.ByName("16 Psyche")
	ryugu, _ := catalog.ByName("Ryugu")

	got := Metrics([]domain.Asteroid{psyche, ryugu})
	if len(got) != 2 {
		t.Fatalf("len(Metrics) = %d, want 2", len(got))
	}

	if got[0].Label != "16 Psyche" || got[0].Value != "$10,000B" || got[0].Band != "($6,000B – $14,000B)" {
		t.Errorf("psyche metric = %+v", got[0])
	}
	if got[1].Label != "Ryugu" || got[1].Value != "$9B" || got[1].Band != "($5B – $12B)" {
		t.Errorf("ryugu metric = %+v", got[1])
	}
}

func TestMetricsEmpty(t *testing.T) {
	if got := Metrics(nil); len(got) != 0 {
		t.Errorf("Metrics(nil) = %v, want empty", got)
	}
}
