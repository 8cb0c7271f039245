// Package braille implements a pixel-addressable terminal canvas. Every
// character cell packs a 2x4 grid of sub-pixels into one Unicode Braille
// pattern (U+2800 + mask), so a canvas of w x h cells exposes 2w x 4h pixels.
//
// Each cell:
//
//	x→ 0 1   y
//	  ┌───┐  ↓
//	  │1 4│  0
//	  │2 5│  1
//	  │3 6│  2
//	  │7 8│  3
//	  └───┘
//
// All sub-pixels of a cell share one color. A cell may also carry a text
// override that replaces its glyph at render time.
//
// Two coordinate systems address the same pixels: screen coordinates put the
// origin top-left with y growing downward, cartesian coordinates put it
// bottom-left with y growing upward. Coordinates outside the canvas are
// ignored.
//
// A Canvas is not safe for concurrent mutation.
package braille

import (
	"fmt"

	"github.com/pkg/errors"
)

// BlendMode decides what happens when a colored pixel lands in a cell that
// already has a color.
type BlendMode uint8

const (
	// Overwrite replaces the cell color with the newest one.
	Overwrite BlendMode = iota
	// KeepFirst keeps the first color assigned to a cell until the cell is
	// emptied or the canvas cleared.
	KeepFirst
)

func (m BlendMode) String() string {
	switch m {
	case Overwrite:
		return "overwrite"
	case KeepFirst:
		return "keep-first"
	}
	return fmt.Sprintf("BlendMode(%d)", uint8(m))
}

// ParseBlendMode is the inverse of BlendMode.String.
func ParseBlendMode(s string) (BlendMode, error) {
	switch s {
	case "overwrite", "":
		return Overwrite, nil
	case "keep-first", "keepfirst", "keep_first":
		return KeepFirst, nil
	}
	return Overwrite, errors.Errorf("unknown blend mode %q", s)
}

// pixelMap[y][x] is the mask bit of sub-pixel (x, y) inside a cell.
var pixelMap = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a fixed-size Braille canvas. Construct it with New; to resize,
// construct a new one.
type Canvas struct {
	// Blend applies to subsequent colored pixel writes.
	Blend BlendMode

	width  int // in cells
	height int // in cells

	buffer []uint8
	colors []Color
	text   []rune // 0 = no override
}

// New returns a blank canvas of width x height cells. Negative sizes are
// treated as zero.
func New(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	n := width * height
	return &Canvas{
		Blend:  Overwrite,
		width:  width,
		height: height,
		buffer: make([]uint8, n),
		colors: make([]Color, n),
		text:   make([]rune, n),
	}
}

// Width returns the width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the height in cells.
func (c *Canvas) Height() int { return c.height }

// PixelWidth returns the width in sub-pixels.
func (c *Canvas) PixelWidth() int { return c.width * 2 }

// PixelHeight returns the height in sub-pixels.
func (c *Canvas) PixelHeight() int { return c.height * 4 }

// Clear blanks every pixel, color and text override without reallocating.
func (c *Canvas) Clear() {
	clear(c.buffer)
	clear(c.colors)
	clear(c.text)
}

// Cell returns the raw state of a cell. ok is false outside the canvas.
func (c *Canvas) Cell(col, row int) (mask uint8, color Color, text rune, ok bool) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return 0, NoColor, 0, false
	}
	i := row*c.width + col
	return c.buffer[i], c.colors[i], c.text[i], true
}

// flipY converts between cartesian and screen rows.
func (c *Canvas) flipY(y int) int {
	return c.PixelHeight() - 1 - y
}

// locate returns the cell index and mask bit of screen pixel (x, y).
func (c *Canvas) locate(x, y int) (int, uint8, bool) {
	if x < 0 || y < 0 || x >= c.PixelWidth() || y >= c.PixelHeight() {
		return 0, 0, false
	}
	return (y/4)*c.width + x/2, pixelMap[y%4][x%2], true
}

func (c *Canvas) paint(i int, color Color) {
	if !color.IsSet() {
		return
	}
	switch c.Blend {
	case Overwrite:
		c.colors[i] = color
	case KeepFirst:
		if !c.colors[i].IsSet() {
			c.colors[i] = color
		}
	}
}

func (c *Canvas) set(x, y int, color Color) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	c.buffer[i] |= bit
	c.paint(i, color)
}

func (c *Canvas) unset(x, y int) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	c.buffer[i] &^= bit
	if c.buffer[i] == 0 {
		c.colors[i] = NoColor
	}
}

func (c *Canvas) toggle(x, y int, color Color) {
	i, bit, ok := c.locate(x, y)
	if !ok {
		return
	}
	if c.buffer[i]&bit != 0 {
		c.unset(x, y)
	} else {
		c.set(x, y, color)
	}
}

func (c *Canvas) get(x, y int) bool {
	i, bit, ok := c.locate(x, y)
	return ok && c.buffer[i]&bit != 0
}

// SetPixel lights cartesian pixel (x, y) and colors its cell per Blend.
// NoColor leaves the cell color as is.
func (c *Canvas) SetPixel(x, y int, color Color) { c.set(x, c.flipY(y), color) }

// SetPixelScreen is SetPixel in screen coordinates.
func (c *Canvas) SetPixelScreen(x, y int, color Color) { c.set(x, y, color) }

// UnsetPixel clears cartesian pixel (x, y). A cell left with no lit pixels
// loses its color.
func (c *Canvas) UnsetPixel(x, y int) { c.unset(x, c.flipY(y)) }

// UnsetPixelScreen is UnsetPixel in screen coordinates.
func (c *Canvas) UnsetPixelScreen(x, y int) { c.unset(x, y) }

// TogglePixel flips cartesian pixel (x, y), coloring it when it turns on.
func (c *Canvas) TogglePixel(x, y int, color Color) { c.toggle(x, c.flipY(y), color) }

// TogglePixelScreen is TogglePixel in screen coordinates.
func (c *Canvas) TogglePixelScreen(x, y int, color Color) { c.toggle(x, y, color) }

// Pixel reports whether cartesian pixel (x, y) is lit.
func (c *Canvas) Pixel(x, y int) bool { return c.get(x, c.flipY(y)) }

// PixelScreen reports whether screen pixel (x, y) is lit.
func (c *Canvas) PixelScreen(x, y int) bool { return c.get(x, y) }

func (c *Canvas) setChar(col, row int, r rune, color Color) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	i := row*c.width + col
	c.text[i] = r
	if color.IsSet() {
		c.colors[i] = color
	}
}

// SetChar places r over cell (col, row), counting rows from the bottom. The
// rune replaces the Braille glyph when rendering; a set color replaces the
// cell color regardless of Blend. r == 0 removes the override.
func (c *Canvas) SetChar(col, row int, r rune, color Color) {
	c.setChar(col, c.height-1-row, r, color)
}

// SetCharScreen is SetChar with rows counted from the top.
func (c *Canvas) SetCharScreen(col, row int, r rune, color Color) {
	c.setChar(col, row, r, color)
}
