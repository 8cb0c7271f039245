package braille

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blank = "⠀"

func TestRender_EmptyUnitCanvas(t *testing.T) {
	c := New(1, 1)
	assert.Equal(t, blank+"\n", c.RenderWithOptions(false, ""))
	assert.Equal(t, "┌─┐\n│"+blank+"│\n└─┘", c.Render())
	assert.Equal(t, blank+"\n", c.RenderNoColor())
}

func TestRender_Title(t *testing.T) {
	tests := []struct {
		name  string
		width int
		title string
		want  string
	}{
		{"EvenPadding", 2, "ab", " ab \n"},
		{"OddPadding", 2, "abc", "abc \n"},
		{"Wider", 1, "toolong", "toolong\n"},
		{"Wide runes", 4, "図表", " 図表 \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.width, 1)
			out := c.RenderWithOptions(false, tt.title)
			first, _, _ := strings.Cut(out, "\n")
			assert.Equal(t, tt.want, first+"\n")
		})
	}
}

func TestRender_Glyphs(t *testing.T) {
	c := New(2, 1)
	c.SetPixelScreen(0, 0, NoColor)
	c.SetPixelScreen(3, 3, NoColor)
	c.SetPixelScreen(2, 3, NoColor)
	assert.Equal(t, "⠁⣀\n", c.RenderWithOptions(false, ""))
}

func TestRender_DifferentialColor(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Canvas)
		w, h  int
		want  string
	}{
		{
			name: "SameColorRun",
			w:    2, h: 1,
			setup: func(c *Canvas) {
				c.SetPixelScreen(0, 0, Red)
				c.SetPixelScreen(2, 0, Red)
			},
			want: "\x1b[31m⠁⠁\x1b[0m\n",
		},
		{
			name: "ColorThenNone",
			w:    2, h: 1,
			setup: func(c *Canvas) {
				c.SetPixelScreen(0, 0, Red)
			},
			want: "\x1b[31m⠁\x1b[0m" + blank + "\n",
		},
		{
			name: "NoneThenColor",
			w:    2, h: 1,
			setup: func(c *Canvas) {
				c.SetPixelScreen(2, 0, BrightBlue)
			},
			want: blank + "\x1b[94m⠁\x1b[0m\n",
		},
		{
			name: "ColorChange",
			w:    2, h: 1,
			setup: func(c *Canvas) {
				c.SetPixelScreen(0, 0, Red)
				c.SetPixelScreen(2, 0, RGB(1, 2, 3))
			},
			want: "\x1b[31m⠁\x1b[38;2;1;2;3m⠁\x1b[0m\n",
		},
		{
			name: "ResetPerRow",
			w:    1, h: 2,
			setup: func(c *Canvas) {
				c.SetPixelScreen(0, 0, Red)
				c.SetPixelScreen(0, 4, Red)
			},
			want: "\x1b[31m⠁\x1b[0m\n\x1b[31m⠁\x1b[0m\n",
		},
		{
			name: "TextOverrideKeepsColor",
			w:    1, h: 1,
			setup: func(c *Canvas) {
				c.SetPixelScreen(0, 0, Red)
				c.SetCharScreen(0, 0, 'A', Green)
			},
			want: "\x1b[32mA\x1b[0m\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.w, tt.h)
			tt.setup(c)
			assert.Equal(t, tt.want, c.RenderWithOptions(false, ""))
		})
	}
}

func TestRender_BorderAndTitle(t *testing.T) {
	c := New(2, 2)
	c.SetCharScreen(0, 0, 'h', NoColor)
	c.SetCharScreen(1, 0, 'i', NoColor)
	c.SetPixelScreen(3, 7, NoColor)
	want := " T  \n" +
		"┌──┐\n" +
		"│hi│\n" +
		"│" + blank + "⢀│\n" +
		"└──┘"
	assert.Equal(t, want, c.RenderWithOptions(true, "T"))
}

func TestRender_CartesianText(t *testing.T) {
	c := New(1, 2)
	c.SetChar(0, 0, 'x', NoColor)
	assert.Equal(t, blank+"\nx\n", c.RenderWithOptions(false, ""))
}

func TestRenderNoColor_IgnoresColorAndText(t *testing.T) {
	c := New(2, 1)
	c.SetPixelScreen(0, 0, Red)
	c.SetCharScreen(1, 0, 'Q', Blue)
	assert.Equal(t, "⠁"+blank+"\n", c.RenderNoColor())
}

func TestRender_Idempotent(t *testing.T) {
	c := New(8, 4)
	c.Circle(8, 8, 6, Magenta)
	c.SetChar(1, 1, '*', Yellow)
	first := c.Render()
	assert.Equal(t, first, c.Render())
	assert.Equal(t, first, c.Render())
}

func TestRenderTo_SinksAgree(t *testing.T) {
	c := New(12, 3)
	c.Line(0, 0, 23, 11, RGB(200, 100, 50))
	c.Circle(12, 6, 5, Cyan)
	c.SetChar(0, 2, 'y', White)
	want := c.RenderWithOptions(true, "sinks")

	var sb strings.Builder
	require.NoError(t, c.RenderTo(&sb, true, "sinks"))
	assert.Equal(t, want, sb.String())

	var buf bytes.Buffer
	require.NoError(t, c.RenderTo(&buf, true, "sinks"))
	assert.Equal(t, want, buf.String())

	var out bytes.Buffer
	bw := bufio.NewWriterSize(&out, 16)
	require.NoError(t, c.RenderTo(bw, true, "sinks"))
	require.NoError(t, bw.Flush())
	assert.Equal(t, want, out.String())

	// A reused sink yields the same frame again.
	buf.Reset()
	require.NoError(t, c.RenderTo(&buf, true, "sinks"))
	assert.Equal(t, want, buf.String())
}

func TestRenderTo_Allocations(t *testing.T) {
	c := New(40, 10)
	for x := 0; x < c.PixelWidth(); x++ {
		c.Line(x, 0, x, c.PixelHeight()-1, RGB(uint8(x*3), 128, uint8(255-x*3)))
	}
	var buf bytes.Buffer
	require.NoError(t, c.RenderTo(&buf, true, ""))
	buf.Grow(buf.Len())

	allocs := testing.AllocsPerRun(20, func() {
		buf.Reset()
		_ = c.RenderTo(&buf, true, "")
	})
	assert.LessOrEqual(t, allocs, 2.0, "per-cell color changes must not allocate")
}

var errFull = errors.New("sink full")

// limitSink accepts a fixed number of writes.
type limitSink struct {
	strings.Builder
	left int
}

func (s *limitSink) take() error {
	if s.left == 0 {
		return errFull
	}
	s.left--
	return nil
}

func (s *limitSink) Write(p []byte) (int, error) {
	if err := s.take(); err != nil {
		return 0, err
	}
	return s.Builder.Write(p)
}

func (s *limitSink) WriteString(str string) (int, error) {
	if err := s.take(); err != nil {
		return 0, err
	}
	return s.Builder.WriteString(str)
}

func (s *limitSink) WriteRune(r rune) (int, error) {
	if err := s.take(); err != nil {
		return 0, err
	}
	return s.Builder.WriteRune(r)
}

func TestRenderTo_SinkFailure(t *testing.T) {
	c := New(4, 2)
	c.RectFilled(0, 0, 8, 8, Red)
	for _, limit := range []int{0, 1, 5, 9, 20} {
		s := &limitSink{left: limit}
		err := c.RenderTo(s, true, "title")
		assert.ErrorIs(t, err, errFull, "limit %d", limit)
	}

	s := &limitSink{left: 1 << 20}
	assert.NoError(t, c.RenderTo(s, true, "title"))
	assert.Equal(t, c.RenderWithOptions(true, "title"), s.String())
}

func TestSGRState(t *testing.T) {
	var sb strings.Builder
	var s sgrState

	require.NoError(t, s.transition(&sb, NoColor))
	assert.Empty(t, sb.String(), "starting uncolored emits nothing")

	require.NoError(t, s.transition(&sb, Red))
	require.NoError(t, s.transition(&sb, Red))
	assert.Equal(t, "\x1b[31m", sb.String())

	require.NoError(t, s.transition(&sb, RGB(255, 0, 10)))
	assert.Equal(t, "\x1b[31m\x1b[38;2;255;0;10m", sb.String())

	sb.Reset()
	require.NoError(t, s.transition(&sb, NoColor))
	assert.Equal(t, sgrReset, sb.String())

	sb.Reset()
	require.NoError(t, s.endRow(&sb))
	assert.Empty(t, sb.String(), "no reset without an active color")

	require.NoError(t, s.transition(&sb, Green))
	require.NoError(t, s.endRow(&sb))
	assert.Equal(t, "\x1b[32m"+sgrReset, sb.String())
	assert.Equal(t, NoColor, s.last)
}
