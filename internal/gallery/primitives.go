package gallery

import (
	"math"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
)

type shapeKind int

const (
	rectFilled shapeKind = iota
	circleFilled
	crossLines
	// eraser unsets the pixels under a disc, punching holes in earlier shapes.
	eraser
)

// shape moves in screen pixel space and bounces off the canvas edges
// extended by a margin, so part of it leaves the canvas and is clipped.
type shape struct {
	x, y   float64
	vx, vy float64
	size   float64
	kind   shapeKind
	color  braille.Color
}

var shapes = []shape{
	{x: 20, y: 20, vx: 1.5, vy: 1.1, size: 25, kind: circleFilled, color: braille.Blue},
	{x: 80, y: 40, vx: -1.2, vy: 1.8, size: 20, kind: rectFilled, color: braille.Red},
	{x: 50, y: 10, vx: 2.0, vy: -1.5, size: 15, kind: circleFilled, color: braille.Green},
	{x: 10, y: 60, vx: 2.5, vy: 0.5, size: 30, kind: crossLines, color: braille.BrightYellow},
	{x: 60, y: 30, vx: -1.0, vy: -1.0, size: 12, kind: eraser},
}

// bounce returns the position at time t of a point starting at x0 with
// velocity v, reflected back and forth inside [lo, hi].
func bounce(x0, v, lo, hi, t float64) float64 {
	span := hi - lo
	if span <= 0 {
		return lo
	}
	p := math.Mod(x0-lo+v*t, 2*span)
	if p < 0 {
		p += 2 * span
	}
	if p > span {
		p = 2*span - p
	}
	return lo + p
}

// at returns s moved to frame t on a w x h pixel canvas.
func (s shape) at(t, w, h float64) shape {
	margin := s.size + 10
	s.x = bounce(s.x, s.vx, -margin, w+margin, t)
	s.y = bounce(s.y, s.vy, -margin, h+margin, t)
	return s
}

func (s shape) draw(cv *braille.Canvas) {
	px, py, n := int(s.x), int(s.y), int(s.size)
	switch s.kind {
	case rectFilled:
		cv.RectFilled(px-n, py-n, 2*n, 2*n, s.color)
	case circleFilled:
		cv.CircleFilled(px, py, n, s.color)
	case crossLines:
		cv.LineScreen(px-2*n, py-2*n, px+2*n, py+2*n, s.color)
		cv.LineScreen(px-2*n, py+2*n, px+2*n, py-2*n, s.color)
	case eraser:
		for dy := -n; dy <= n; dy++ {
			for dx := -n; dx <= n; dx++ {
				if dx*dx+dy*dy <= n*n {
					cv.UnsetPixelScreen(px+dx, py+dy)
				}
			}
		}
	}
}

func drawPrimitives(c *chart.Chart, frame int) {
	w := float64(c.Canvas.PixelWidth())
	h := float64(c.Canvas.PixelHeight())
	c.DrawGrid(10, 5, braille.BrightBlack)
	for _, s := range shapes {
		s.at(float64(frame+1), w, h).draw(c.Canvas)
	}
	c.Text(" blend: "+c.Canvas.Blend.String()+" ", 0.02, 0.02, braille.White)
}
