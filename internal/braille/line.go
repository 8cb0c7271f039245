package braille

// Outcode bits of a point relative to the pixel rectangle.
const (
	outLeft   = 1 << iota // x < 0
	outRight              // x >= width
	outTop                // y < 0 (screen)
	outBottom             // y >= height (screen)
)

func (c *Canvas) outcode(x, y int) uint8 {
	var code uint8
	if x < 0 {
		code |= outLeft
	} else if x >= c.PixelWidth() {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y >= c.PixelHeight() {
		code |= outBottom
	}
	return code
}

// clip moves the endpoints of segment (x0,y0)-(x1,y1) onto the pixel
// rectangle (Cohen-Sutherland). ok is false when no part of the segment is
// inside.
func (c *Canvas) clip(x0, y0, x1, y1 int) (int, int, int, int, bool) {
	w, h := c.PixelWidth(), c.PixelHeight()
	code0, code1 := c.outcode(x0, y0), c.outcode(x1, y1)
	for {
		if code0|code1 == 0 {
			return x0, y0, x1, y1, true
		}
		if code0&code1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := code0
		if out == 0 {
			out = code1
		}
		var x, y int
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(h-1-y0)/(y1-y0)
			y = h - 1
		case out&outTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&outRight != 0:
			y = y0 + (y1-y0)*(w-1-x0)/(x1-x0)
			x = w - 1
		case out&outLeft != 0:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}
		if out == code0 {
			x0, y0 = x, y
			code0 = c.outcode(x0, y0)
		} else {
			x1, y1 = x, y
			code1 = c.outcode(x1, y1)
		}
	}
}

// bresenham clips the segment and walks it, lighting every pixel on the way.
// The clip runs in whichever space the coordinates are given in; both spaces
// share the same rectangle.
func (c *Canvas) bresenham(x0, y0, x1, y1 int, color Color, cartesian bool) {
	x0, y0, x1, y1, ok := c.clip(x0, y0, x1, y1)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if cartesian {
			c.SetPixel(x0, y0, color)
		} else {
			c.SetPixelScreen(x0, y0, color)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Line draws a segment between two cartesian pixels. Portions outside the
// canvas are clipped off.
func (c *Canvas) Line(x0, y0, x1, y1 int, color Color) {
	c.bresenham(x0, y0, x1, y1, color, true)
}

// LineScreen is Line in screen coordinates.
func (c *Canvas) LineScreen(x0, y0, x1, y1 int, color Color) {
	c.bresenham(x0, y0, x1, y1, color, false)
}

// Rect strokes a w x h rectangle whose top-left screen pixel is (x, y).
func (c *Canvas) Rect(x, y, w, h int, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x1, y1 := x+w-1, y+h-1
	c.LineScreen(x, y, x1, y, color)
	c.LineScreen(x1, y, x1, y1, color)
	c.LineScreen(x1, y1, x, y1, color)
	c.LineScreen(x, y1, x, y, color)
}

// RectFilled fills a w x h rectangle whose top-left screen pixel is (x, y).
func (c *Canvas) RectFilled(x, y, w, h int, color Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for row := y; row < y+h; row++ {
		c.LineScreen(x, row, x+w-1, row, color)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
