// Package dashboard assembles the planner's single HTML page: sidebar filter
// controls, results table, profit widgets, and both charts. Every render is a
// pure function of the request's control state.
package dashboard

import (
	"fmt"
	"html/template"
	"io"

	"github.com/samber/lo"

	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/orbit"
	"github.com/astromine/planner/internal/profit"
	"github.com/astromine/planner/internal/screen"
)

// View is everything one render pass needs. Filtered may be empty, in which
// case the page shows the empty-state notice and no charts.
type View struct {
	Criteria domain.FilterCriteria
	AllTypes []domain.SpectralType
	Filtered []domain.Asteroid
	Metrics  []profit.Metric
	Selected string
	Scatter  template.HTML
	Orbit    template.HTML
}

// BuildView runs the estimate and chart stages for an already-filtered set.
// selected picks the orbit to plot; anything not in the filtered set falls
// back to the first filtered record.
func BuildView(criteria domain.FilterCriteria, allTypes []domain.SpectralType, filtered []domain.Asteroid, selected string) (View, error) {
	v := View{
		Criteria: criteria,
		AllTypes: allTypes,
		Filtered: filtered,
		Metrics:  profit.Metrics(filtered),
	}

	if len(filtered) == 0 {
		return v, nil
	}

	if _, ok := lo.Find(filtered, func(a domain.Asteroid) bool { return a.Name == selected }); !ok {
		selected = filtered[0].Name
	}
	v.Selected = selected

	scatter, err := ScatterSnippet(filtered)
	if err != nil {
		return View{}, fmt.Errorf("building scatter chart: %w", err)
	}
	v.Scatter = scatter

	orbitChart, err := OrbitSnippet(orbit.ReferenceTrace(selected))
	if err != nil {
		return View{}, fmt.Errorf("building orbit chart: %w", err)
	}
	v.Orbit = orbitChart

	return v, nil
}

// Render writes the full dashboard document.
func Render(w io.Writer, v View) error {
	if err := pageTmpl.Execute(w, v); err != nil {
		return fmt.Errorf("executing dashboard template: %w", err)
	}
	return nil
}

// sliderBounds surfaces the screen package bounds to the template so the
// markup and the clamping logic cannot drift apart.
type sliderBounds struct {
	DiamFloor, DiamCeil   float64
	ValueFloor, ValueCeil string
	DvFloor, DvCeil       float64
}

// Bounds returns the fixed slider bounds for the three numeric controls.
func (View) Bounds() sliderBounds {
	return sliderBounds{
		DiamFloor:  screen.MinDiameterFloor,
		DiamCeil:   screen.MinDiameterCeil,
		ValueFloor: screen.MinValueFloor.String(),
		ValueCeil:  screen.MinValueCeil.String(),
		DvFloor:    screen.MaxDeltaVFloor,
		DvCeil:     screen.MaxDeltaVCeil,
	}
}

var pageTmpl = template.Must(template.New("dashboard").Parse(pageHTML))
