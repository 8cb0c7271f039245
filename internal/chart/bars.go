package chart

import "math"

// BarChart draws one vertical bar per value, all bars sharing the pixel
// width evenly (at least one pixel each) and scaled so the largest value
// reaches the top. Non-finite and non-positive values leave an empty slot.
// Bars that would start beyond the right edge are dropped.
func (c *Chart) BarChart(values []Value) {
	if len(values) == 0 {
		return
	}
	maxV := 0.0
	for _, v := range values {
		if finite(v.V) {
			maxV = math.Max(maxV, v.V)
		}
	}
	if maxV <= rangeEpsilon {
		return
	}

	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	barWidth := max(w/len(values), 1)
	for i, v := range values {
		if !finite(v.V) || v.V <= 0 {
			continue
		}
		start := i * barWidth
		if start >= w {
			break
		}
		height := min(int(math.Round(v.V/maxV*float64(h))), h)
		end := min(start+barWidth, w)
		for x := start; x < end; x++ {
			c.Canvas.Line(x, 0, x, height, v.Color)
		}
	}
}

// PieChart draws the boundary of each positive slice as a radius from the
// canvas center to the slice's ending angle, starting at angle 0 and going
// counterclockwise. Sectors are not filled.
func (c *Chart) PieChart(slices []Value) {
	total := 0.0
	for _, s := range slices {
		if finite(s.V) && s.V > 0 {
			total += s.V
		}
	}
	if total <= rangeEpsilon {
		return
	}

	w, h := c.Canvas.PixelWidth(), c.Canvas.PixelHeight()
	cx, cy := w/2, h/2
	radius := float64(int(float64(min(w, h)) / 2 * 0.95))
	angle := 0.0
	for _, s := range slices {
		if !finite(s.V) || s.V <= 0 {
			continue
		}
		angle += s.V / total * 2 * math.Pi
		ex := cx + int(radius*math.Cos(angle))
		ey := cy + int(radius*math.Sin(angle))
		c.Canvas.Line(cx, cy, ex, ey, s.Color)
	}
}
