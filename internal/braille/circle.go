package braille

// midpoint walks one octant of a circle of radius r with the midpoint
// algorithm, calling step for every (x, y) offset with x <= y (plus the final
// crossing step).
func midpoint(r int, step func(x, y int)) {
	if r == 0 {
		step(0, 0)
		return
	}
	x, y := 0, r
	d := 3 - 2*r
	step(x, y)
	for y >= x {
		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
		step(x, y)
	}
}

// plotOctants lights the eight mirror images of offset (x, y) around the
// cartesian center (cx, cy). Negative coordinates are skipped.
func (c *Canvas) plotOctants(cx, cy, x, y int, color Color) {
	points := [8][2]int{
		{cx + x, cy + y}, {cx - x, cy + y}, {cx + x, cy - y}, {cx - x, cy - y},
		{cx + y, cy + x}, {cx - y, cy + x}, {cx + y, cy - x}, {cx - y, cy - x},
	}
	for _, p := range points {
		if p[0] >= 0 && p[1] >= 0 {
			c.SetPixel(p[0], p[1], color)
		}
	}
}

// spanOctants draws the four horizontal spans joining the mirror images of
// offset (x, y) around the cartesian center (cx, cy).
func (c *Canvas) spanOctants(cx, cy, x, y int, color Color) {
	c.Line(cx-x, cy+y, cx+x, cy+y, color)
	c.Line(cx-x, cy-y, cx+x, cy-y, color)
	c.Line(cx-y, cy+x, cx+y, cy+x, color)
	c.Line(cx-y, cy-x, cx+y, cy-x, color)
}

// Circle strokes a circle of radius r around cartesian pixel (xc, yc).
func (c *Canvas) Circle(xc, yc, r int, color Color) {
	if r < 0 {
		return
	}
	midpoint(r, func(x, y int) { c.plotOctants(xc, yc, x, y, color) })
}

// CircleFilled fills a circle of radius r around cartesian pixel (xc, yc).
func (c *Canvas) CircleFilled(xc, yc, r int, color Color) {
	if r < 0 {
		return
	}
	midpoint(r, func(x, y int) { c.spanOctants(xc, yc, x, y, color) })
}
