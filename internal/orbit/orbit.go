// Package orbit samples heliocentric orbit traces for plotting.
package orbit

import "math"

// Trace is a sampled orbit polyline in the ecliptic plane, in AU.
// X and Y always have equal length and the polyline is closed.
type Trace struct {
	Label string
	X     []float64
	Y     []float64
}

const (
	// referenceRadiusAU is the radius of the placeholder orbit shown for
	// the current selection: a 1 AU circle, roughly Earth-like.
	referenceRadiusAU = 1.0
	defaultSamples    = 128
)

// CircularTrace samples a closed circular orbit of the given radius around
// the origin. samples below 3 falls back to the default resolution.
func CircularTrace(radiusAU float64, samples int) Trace {
	if samples < 3 {
		samples = defaultSamples
	}

	// samples+1 points so the polyline closes on its starting point.
	x := make([]float64, samples+1)
	y := make([]float64, samples+1)
	for k := 0; k <= samples; k++ {
		theta := 2 * math.Pi * float64(k) / float64(samples)
		x[k] = radiusAU * math.Cos(theta)
		y[k] = radiusAU * math.Sin(theta)
	}

	return Trace{X: x, Y: y}
}

// ReferenceTrace returns the orbit displayed for the selected record. It is a
// fixed circular orbit at 1 AU labeled with the selection, independent of the
// record's own elements.
//
// TODO: derive the trace from the selected record's a/e/i elements instead of
// the fixed 1 AU circle.
func ReferenceTrace(name string) Trace {
	tr := CircularTrace(referenceRadiusAU, defaultSamples)
	tr.Label = name
	return tr
}
