package chart

import (
	"math"

	"brailleplot/internal/braille"
)

// Scatter plots every finite point, scaled to the points' own range.
func (c *Chart) Scatter(points []Point, color braille.Color) {
	if len(points) == 0 {
		return
	}
	xr, yr := AutoRange(points, defaultPadding)
	c.ScatterIn(points, xr, yr, color)
}

// ScatterIn plots every finite point against the given ranges.
func (c *Chart) ScatterIn(points []Point, xr, yr Range, color braille.Color) {
	for _, p := range points {
		if !p.finite() {
			continue
		}
		px, py := c.mapCoords(p.X, p.Y, xr, yr)
		c.Canvas.SetPixel(px, py, color)
	}
}

// LineChart joins consecutive points, scaled to the points' own range. A
// segment with a non-finite end is skipped, leaving a gap.
func (c *Chart) LineChart(points []Point, color braille.Color) {
	if len(points) < 2 {
		return
	}
	xr, yr := AutoRange(points, defaultPadding)
	c.LineChartIn(points, xr, yr, color)
}

// LineChartIn is LineChart against the given ranges.
func (c *Chart) LineChartIn(points []Point, xr, yr Range, color braille.Color) {
	for i := 1; i < len(points); i++ {
		c.segment(points[i-1], points[i], xr, yr, color)
	}
}

// Polygon strokes the closed outline through vertices, scaled to their own
// range. The interior is not filled.
func (c *Chart) Polygon(vertices []Point, color braille.Color) {
	if len(vertices) < 2 {
		return
	}
	xr, yr := AutoRange(vertices, defaultPadding)
	c.PolygonIn(vertices, xr, yr, color)
}

// PolygonIn is Polygon against the given ranges.
func (c *Chart) PolygonIn(vertices []Point, xr, yr Range, color braille.Color) {
	if len(vertices) < 2 {
		return
	}
	for i := range vertices {
		c.segment(vertices[i], vertices[(i+1)%len(vertices)], xr, yr, color)
	}
}

func (c *Chart) segment(a, b Point, xr, yr Range, color braille.Color) {
	if !a.finite() || !b.finite() {
		return
	}
	x0, y0 := c.mapCoords(a.X, a.Y, xr, yr)
	x1, y1 := c.mapCoords(b.X, b.Y, xr, yr)
	c.Canvas.Line(x0, y0, x1, y1, color)
}

// PlotFunction samples f at PixelWidth()+1 evenly spaced x values over
// [minX, maxX] and draws the finite samples with LineChart.
func (c *Chart) PlotFunction(f func(float64) float64, minX, maxX float64, color braille.Color) {
	steps := c.Canvas.PixelWidth()
	if steps == 0 {
		return
	}
	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := minX + t*(maxX-minX)
		if y := f(x); finite(y) {
			points = append(points, Point{x, y})
		}
	}
	c.LineChart(points, color)
}

// DrawCircle strokes a circle given in normalized device space: center
// components in [0, 1] across the canvas, radius as a fraction of the
// smaller pixel dimension.
func (c *Chart) DrawCircle(center Point, radius float64, color braille.Color) {
	if !center.finite() || !finite(radius) {
		return
	}
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	r := radius * min(w, h)
	cx := center.X * (w - 1)
	cy := center.Y * (h - 1)
	c.Canvas.Circle(truncPixel(cx), truncPixel(cy), truncPixel(r), color)
}

// truncPixel converts toward zero, bounded like toPixel.
func truncPixel(f float64) int {
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
