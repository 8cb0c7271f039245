package braille

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func litCartesian(c *Canvas) [][2]int {
	var out [][2]int
	for y := 0; y < c.PixelHeight(); y++ {
		for x := 0; x < c.PixelWidth(); x++ {
			if c.Pixel(x, y) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

func TestCircle_Stroke(t *testing.T) {
	c := New(10, 5)
	c.Circle(10, 10, 5, Green)

	for _, p := range [][2]int{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		assert.True(t, c.Pixel(p[0], p[1]), "cardinal point %v", p)
	}
	assert.False(t, c.Pixel(10, 10), "stroke leaves the center empty")

	lit := litCartesian(c)
	assert.NotEmpty(t, lit)
	for _, p := range lit {
		dx, dy := p[0]-10, p[1]-10
		mirrors := [][2]int{
			{10 - dx, 10 + dy}, {10 + dx, 10 - dy}, {10 - dx, 10 - dy},
			{10 + dy, 10 + dx}, {10 - dy, 10 - dx},
		}
		for _, m := range mirrors {
			assert.True(t, c.Pixel(m[0], m[1]), "mirror %v of %v", m, p)
		}
		d2 := dx*dx + dy*dy
		assert.InDelta(t, 25, d2, 11, "point %v far from radius", p)
	}
}

func TestCircle_Filled(t *testing.T) {
	c := New(10, 5)
	c.CircleFilled(10, 10, 5, Green)

	assert.True(t, c.Pixel(10, 10))
	assert.True(t, c.Pixel(12, 12))
	assert.True(t, c.Pixel(10, 15))
	assert.True(t, c.Pixel(6, 10))
	assert.False(t, c.Pixel(10, 16))
	assert.False(t, c.Pixel(16, 16))

	// Every row between the poles is a gap-free span.
	for y := 6; y <= 14; y++ {
		first, last := -1, -1
		for x := 0; x < c.PixelWidth(); x++ {
			if c.Pixel(x, y) {
				if first < 0 {
					first = x
				}
				last = x
			}
		}
		for x := first; x <= last; x++ {
			assert.True(t, c.Pixel(x, y), "gap at (%d,%d)", x, y)
		}
	}
}

func TestCircle_NegativeCoordinatesSkipped(t *testing.T) {
	c := New(4, 2)
	c.Circle(0, 0, 3, NoColor)
	assert.True(t, c.Pixel(3, 0))
	assert.True(t, c.Pixel(0, 3))
	for _, p := range litCartesian(c) {
		assert.GreaterOrEqual(t, p[0], 0)
		assert.GreaterOrEqual(t, p[1], 0)
	}

	c.Clear()
	c.CircleFilled(-2, -2, 3, NoColor)
	assert.True(t, c.Pixel(0, 0))
}

func TestCircle_DegenerateRadius(t *testing.T) {
	c := New(4, 2)
	c.Circle(3, 3, 0, NoColor)
	assert.Equal(t, [][2]int{{3, 3}}, litCartesian(c))

	c.Clear()
	c.Circle(3, 3, -1, NoColor)
	c.CircleFilled(3, 3, -2, NoColor)
	assert.Empty(t, litCartesian(c))
}
