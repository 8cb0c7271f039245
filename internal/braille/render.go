package braille

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const brailleBase = 0x2800

// Border runes.
const (
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
	borderHorizontal  = '─'
	borderVertical    = '│'
)

func glyph(mask uint8) rune {
	return rune(brailleBase + int(mask))
}

// frameWriter keeps the first write error and turns later writes into no-ops.
type frameWriter struct {
	w   Sink
	err error
}

func (f *frameWriter) str(s string) {
	if f.err == nil {
		_, f.err = f.w.WriteString(s)
	}
}

func (f *frameWriter) char(r rune) {
	if f.err == nil {
		_, f.err = f.w.WriteRune(r)
	}
}

func (f *frameWriter) repeat(r rune, n int) {
	for i := 0; i < n && f.err == nil; i++ {
		_, f.err = f.w.WriteRune(r)
	}
}

func (f *frameWriter) horizontal(left, right rune, n int) {
	f.char(left)
	f.repeat(borderHorizontal, n)
	f.char(right)
}

// RenderTo writes the canvas into w: an optional title line centered over the
// bordered width, an optional box border, and one line per cell row with
// color escapes emitted only when the color changes. The bottom border, when
// drawn, has no trailing newline. An empty title means no title line. The
// first error returned by w is returned.
func (c *Canvas) RenderTo(w Sink, border bool, title string) error {
	f := &frameWriter{w: w}

	if title != "" {
		pad := max(c.width+2-runewidth.StringWidth(title), 0)
		f.repeat(' ', pad/2)
		f.str(title)
		f.repeat(' ', pad-pad/2)
		f.char('\n')
	}
	if border {
		f.horizontal(borderTopLeft, borderTopRight, c.width)
		f.char('\n')
	}

	var sgr sgrState
	for row := 0; row < c.height && f.err == nil; row++ {
		if border {
			f.char(borderVertical)
		}
		for col := 0; col < c.width && f.err == nil; col++ {
			i := row*c.width + col
			r := c.text[i]
			if r == 0 {
				r = glyph(c.buffer[i])
			}
			f.err = sgr.transition(w, c.colors[i])
			f.char(r)
		}
		if f.err == nil {
			f.err = sgr.endRow(w)
		}
		if border {
			f.char(borderVertical)
		}
		f.char('\n')
	}

	if border {
		f.horizontal(borderBottomLeft, borderBottomRight, c.width)
	}
	return f.err
}

// RenderWithOptions renders the canvas to a string. See RenderTo.
func (c *Canvas) RenderWithOptions(border bool, title string) string {
	var sb strings.Builder
	// Braille glyphs are three bytes in UTF-8.
	sb.Grow(c.width*c.height*3 + c.height*8 + 64)
	_ = c.RenderTo(&sb, border, title)
	return sb.String()
}

// Render renders the canvas with a border and no title.
func (c *Canvas) Render() string {
	return c.RenderWithOptions(true, "")
}

// RenderNoColor renders only the Braille glyphs: no escapes, no border and
// no text overrides. Every row ends with a newline.
func (c *Canvas) RenderNoColor() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*3 + c.height)
	for row := 0; row < c.height; row++ {
		for _, mask := range c.buffer[row*c.width : (row+1)*c.width] {
			sb.WriteRune(glyph(mask))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
