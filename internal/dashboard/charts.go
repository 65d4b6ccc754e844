package dashboard

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/samber/lo"

	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/orbit"
)

const chartHeight = "460px"

// symbolSize maps a diameter to a bubble size in pixels. Sqrt scaling keeps
// 946 km Ceres from drowning sub-km bodies entirely.
func symbolSize(diameterKm, maxDiameterKm float64) int {
	const minPx, maxPx = 8, 42
	if maxDiameterKm <= 0 {
		return minPx
	}
	return minPx + int(math.Round((maxPx-minPx)*math.Sqrt(diameterKm/maxDiameterKm)))
}

// ScatterSnippet renders the filtered records as an embeddable scatter chart:
// x = semi-major axis, y = inclination, bubble size from diameter, one series
// per spectral type so color and legend are categorical, tooltip = name.
func ScatterSnippet(records []domain.Asteroid) (template.HTML, error) {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Semi-major Axis vs Inclination (size = diameter)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Semi-major Axis (AU)", Type: "value", Scale: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Inclination (deg)", Type: "value", Scale: opts.Bool(true)}),
	)

	maxDiameter := lo.Max(lo.Map(records, func(a domain.Asteroid, _ int) float64 {
		return a.DiameterKm
	}))

	types := lo.Uniq(lo.Map(records, func(a domain.Asteroid, _ int) domain.SpectralType {
		return a.SpectralType
	}))
	for _, st := range types {
		series := lo.FilterMap(records, func(a domain.Asteroid, _ int) (opts.ScatterData, bool) {
			if a.SpectralType != st {
				return opts.ScatterData{}, false
			}
			return opts.ScatterData{
				Name:       a.Name,
				Value:      []interface{}{a.SemiMajorAxisAU, a.InclinationDeg},
				SymbolSize: symbolSize(a.DiameterKm, maxDiameter),
			}, true
		})
		sc.AddSeries(string(st), series)
	}

	return renderSnippet(sc, "scatter")
}

// OrbitSnippet renders an orbit trace as an embeddable line chart.
func OrbitSnippet(tr orbit.Trace) (template.HTML, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Orbit: %s", tr.Label),
			Subtitle: "1 AU circular reference (placeholder)",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x (AU)", Type: "value", Min: -1.25, Max: 1.25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y (AU)", Type: "value", Min: -1.25, Max: 1.25}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	data := make([]opts.LineData, len(tr.X))
	for k := range tr.X {
		data[k] = opts.LineData{Value: []interface{}{tr.X[k], tr.Y[k]}}
	}
	line.AddSeries(tr.Label, data, charts.WithLineChartOpts(opts.LineChart{
		ShowSymbol: opts.Bool(false),
		Smooth:     opts.Bool(true),
	}))

	return renderSnippet(line, "orbit")
}

func renderSnippet(c interface{ Validate() }, kind string) (template.HTML, error) {
	r := render.NewChartRender(c, c.Validate)

	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering %s chart: %w", kind, err)
	}
	return template.HTML(buf.String()), nil
}
