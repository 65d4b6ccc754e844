package screen

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/astromine/planner/internal/catalog"
	"github.com/astromine/planner/internal/domain"
)

func names(records []domain.Asteroid) []string {
	out := make([]string, len(records))
	for i, a := range records {
		out[i] = a.Name
	}
	return out
}

func equalNames(got []domain.Asteroid, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, a := range got {
		if a.Name != want[i] {
			return false
		}
	}
	return true
}

func TestApplyDefaultCriteria(t *testing.T) {
	// Defaults: min diameter 0.5, min value 1.0, max delta-v 7.0, all types.
	// Bennu fails on diameter and value, 1 Ceres and 4 Vesta on delta-v,
	// 433 Eros on value (0.1 < 1.0).
	got := Apply(catalog.All(), Defaults(catalog.SpectralTypes()))
	if !equalNames(got, "16 Psyche", "Ryugu") {
		t.Errorf("Apply(defaults) = %v, want [16 Psyche Ryugu]", names(got))
	}
}

func TestApplySingleType(t *testing.T) {
	c := domain.FilterCriteria{
		AcceptedTypes: []domain.SpectralType{domain.SpectralS},
		MinDiameterKm: 0.1,
		MinValue:      decimal.RequireFromString("0.1"),
		MaxDeltaV:     15.0,
	}
	got := Apply(catalog.All(), c)
	if !equalNames(got, "433 Eros") {
		t.Errorf("Apply(S only) = %v, want [433 Eros]", names(got))
	}
}

func TestApplyEmptyTypeSet(t *testing.T) {
	c := domain.FilterCriteria{
		AcceptedTypes: nil,
		MinDiameterKm: 0.1,
		MinValue:      decimal.RequireFromString("0.1"),
		MaxDeltaV:     15.0,
	}
	if got := Apply(catalog.All(), c); len(got) != 0 {
		t.Errorf("Apply(empty type set) = %v, want empty", names(got))
	}
}

func TestApplyPreservesOrderAndSubsequence(t *testing.T) {
	c := domain.FilterCriteria{
		AcceptedTypes: catalog.SpectralTypes(),
		MinDiameterKm: 0.1,
		MinValue:      decimal.RequireFromString("0.1"),
		MaxDeltaV:     15.0,
	}
	got := Apply(catalog.All(), c)
	if !equalNames(got, "16 Psyche", "Ryugu", "Bennu", "1 Ceres", "4 Vesta", "433 Eros") {
		t.Errorf("loosest criteria changed order or dropped rows: %v", names(got))
	}

	for _, a := range got {
		if !c.Accepts(a.SpectralType) || a.DiameterKm < c.MinDiameterKm ||
			a.EstimatedValue.LessThan(c.MinValue) || a.DeltaVKmPerSec > c.MaxDeltaV {
			t.Errorf("%s does not satisfy the criteria it passed", a.Name)
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	c := Defaults(catalog.SpectralTypes())
	once := Apply(catalog.All(), c)
	twice := Apply(once, c)
	if !equalNames(twice, names(once)...) {
		t.Errorf("Apply not idempotent: %v then %v", names(once), names(twice))
	}
}

func TestApplyMonotoneInThresholds(t *testing.T) {
	base := domain.FilterCriteria{
		AcceptedTypes: catalog.SpectralTypes(),
		MinDiameterKm: 0.1,
		MinValue:      decimal.RequireFromString("0.1"),
		MaxDeltaV:     15.0,
	}
	baseline := len(Apply(catalog.All(), base))

	tighter := base
	tighter.MinDiameterKm = 100
	if n := len(Apply(catalog.All(), tighter)); n > baseline {
		t.Errorf("raising min diameter grew the result: %d > %d", n, baseline)
	}

	tighter = base
	tighter.MinValue = decimal.RequireFromString("400")
	if n := len(Apply(catalog.All(), tighter)); n > baseline {
		t.Errorf("raising min value grew the result: %d > %d", n, baseline)
	}

	tighter = base
	tighter.MaxDeltaV = 5.0
	if n := len(Apply(catalog.All(), tighter)); n > baseline {
		t.Errorf("lowering max delta-v grew the result: %d > %d", n, baseline)
	}
}

func TestClamp(t *testing.T) {
	c := domain.FilterCriteria{
		MinDiameterKm: -5,
		MinValue:      decimal.RequireFromString("99999"),
		MaxDeltaV:     100,
	}
	got := Clamp(c)

	if got.MinDiameterKm != MinDiameterFloor {
		t.Errorf("MinDiameterKm = %v, want %v", got.MinDiameterKm, MinDiameterFloor)
	}
	if !got.MinValue.Equal(MinValueCeil) {
		t.Errorf("MinValue = %s, want %s", got.MinValue, MinValueCeil)
	}
	if got.MaxDeltaV != MaxDeltaVCeil {
		t.Errorf("MaxDeltaV = %v, want %v", got.MaxDeltaV, MaxDeltaVCeil)
	}
}

func TestDefaults(t *testing.T) {
	c := Defaults(catalog.SpectralTypes())
	if c.MinDiameterKm != 0.5 || c.MaxDeltaV != 7.0 {
		t.Errorf("Defaults thresholds = %v/%v, want 0.5/7.0", c.MinDiameterKm, c.MaxDeltaV)
	}
	if !c.MinValue.Equal(decimal.RequireFromString("1.0")) {
		t.Errorf("Defaults min value = %s, want 1.0", c.MinValue)
	}
	if len(c.AcceptedTypes) != 5 {
		t.Errorf("Defaults accepted types = %v, want all five observed", c.AcceptedTypes)
	}
}
