package chart

import (
	"math"
	"strconv"

	"brailleplot/internal/braille"
)

// axisTicks is the number of labels per axis, both ends included.
const axisTicks = 4

// Text writes s one rune per cell starting at the cell nearest to the
// normalized position (x, y), where (0, 0) is the bottom-left cell and
// (1, 1) the top-right one. Runes past the right edge are dropped.
func (c *Chart) Text(s string, x, y float64, color braille.Color) {
	if !finite(x) || !finite(y) {
		return
	}
	w, h := c.Canvas.Width(), c.Canvas.Height()
	fc := math.Max(math.Round(x*float64(max(w-1, 0))), 0)
	fr := math.Max(math.Round(y*float64(max(h-1, 0))), 0)
	if fc >= float64(w) || fr >= float64(h) {
		return
	}
	col, row := int(fc), int(fr)
	for _, r := range s {
		if col >= w {
			break
		}
		c.Canvas.SetChar(col, row, r, color)
		col++
	}
}

// ticks returns axisTicks evenly spaced values from r.Min to r.Max.
func ticks(r Range) [axisTicks]float64 {
	step := r.Span() / (axisTicks - 1)
	var out [axisTicks]float64
	for i := range out {
		out[i] = r.Min + step*float64(i)
	}
	out[axisTicks-1] = r.Max
	return out
}

func tickLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// DrawAxes draws the y axis along the left edge and the x axis along the
// bottom edge, labelled with four ticks each for the given ranges. The
// ranges are taken as is, never inferred from data.
func (c *Chart) DrawAxes(xr, yr Range, color braille.Color) {
	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	c.Canvas.Line(0, 0, 0, h-1, color)
	c.Canvas.Line(0, 0, w-1, 0, color)

	for i, v := range ticks(yr) {
		c.Text(tickLabel(v), 0, float64(i)/(axisTicks-1), color)
	}
	for i, v := range ticks(xr) {
		// Keep the outer labels off the corners.
		x := min(max(float64(i)/(axisTicks-1), 0.05), 0.90)
		c.Text(tickLabel(v), x, 0, color)
	}
}

// DrawGrid draws divsX-1 vertical and divsY-1 horizontal lines splitting
// the canvas into equal parts.
func (c *Chart) DrawGrid(divsX, divsY int, color braille.Color) {
	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	for i := 1; i < divsX; i++ {
		x := int(math.Round(float64(i) / float64(divsX) * float64(w)))
		c.Canvas.Line(x, 0, x, h, color)
	}
	for i := 1; i < divsY; i++ {
		y := int(math.Round(float64(i) / float64(divsY) * float64(h)))
		c.Canvas.Line(0, y, w, y, color)
	}
}
