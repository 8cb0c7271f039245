// Package chart maps numeric data onto a braille.Canvas. A Chart owns one
// canvas and keeps no other state: every primitive computes its own scale
// from the data it is given, unless the caller passes explicit ranges to one
// of the *In variants.
package chart

import (
	"math"

	"brailleplot/internal/braille"
)

const (
	// rangeEpsilon is the smallest span treated as non-degenerate.
	rangeEpsilon = 1e-9
	// defaultPadding is the autorange padding used by the series primitives.
	defaultPadding = 0.05
	// maxPixel bounds mapped coordinates so far-away data cannot overflow
	// the clipping arithmetic.
	maxPixel = 1 << 30
)

// Point is a data-space coordinate.
type Point struct {
	X, Y float64
}

func (p Point) finite() bool {
	return finite(p.X) && finite(p.Y)
}

// Range is a closed data interval.
type Range struct {
	Min, Max float64
}

// Span returns Max-Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Value is one bar or pie slice.
type Value struct {
	V     float64
	Color braille.Color
}

// Chart draws charts onto its Canvas. To resize, create a new Chart.
type Chart struct {
	Canvas *braille.Canvas
}

// New returns a chart over a blank width x height cell canvas.
func New(width, height int) *Chart {
	return &Chart{Canvas: braille.New(width, height)}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AutoRange returns the x and y ranges covering every finite point, widened
// on both sides by padding times the span. A span narrower than 1e-9 counts
// as 1. Without finite points both ranges are [0, 1].
func AutoRange(points []Point, padding float64) (Range, Range) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	n := 0
	for _, p := range points {
		if !p.finite() {
			continue
		}
		n++
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	if n == 0 {
		return Range{0, 1}, Range{0, 1}
	}
	return padded(minX, maxX, padding), padded(minY, maxY, padding)
}

func padded(lo, hi, padding float64) Range {
	span := hi - lo
	if math.Abs(span) < rangeEpsilon || math.IsInf(span, 0) {
		span = 1
	}
	return Range{lo - span*padding, hi + span*padding}
}

// toPixel rounds a device coordinate and bounds it to ±maxPixel. NaN maps
// to 0.
func toPixel(f float64) int {
	f = math.Round(f)
	switch {
	case math.IsNaN(f):
		return 0
	case f > maxPixel:
		return maxPixel
	case f < -maxPixel:
		return -maxPixel
	}
	return int(f)
}

// mapCoords maps (x, y) from the data ranges onto cartesian pixels, with the
// range ends landing on the first and last pixel.
func (c *Chart) mapCoords(x, y float64, xr, yr Range) (int, int) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	return toPixel(fraction(x, xr) * (w - 1)), toPixel(fraction(y, yr) * (h - 1))
}

// fraction returns where v sits in r, 0 at r.Min and 1 at r.Max. It works on
// halved values so ranges as wide as float64 itself do not overflow.
func fraction(v float64, r Range) float64 {
	half := math.Max(r.Max/2-r.Min/2, rangeEpsilon/2)
	return (v/2 - r.Min/2) / half
}
