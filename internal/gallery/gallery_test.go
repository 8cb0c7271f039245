package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
)

func TestScenes(t *testing.T) {
	names := Names()
	require.Len(t, Scenes(), len(names))
	seen := map[string]bool{}
	for _, s := range Scenes() {
		t.Run(s.Name, func(t *testing.T) {
			assert.False(t, seen[s.Name], "duplicate name")
			seen[s.Name] = true
			assert.NotEmpty(t, s.Title)

			got := s.Chart(0, 0, 3)
			assert.Equal(t, s.Width, got.Canvas.Width())
			assert.Equal(t, s.Height, got.Canvas.Height())
			assert.Equal(t, s.Blend, got.Canvas.Blend)

			blank := chart.New(s.Width, s.Height).Canvas.RenderNoColor()
			assert.NotEqual(t, blank, got.Canvas.RenderNoColor(), "scene draws something")
			assert.Equal(t, got.Canvas.Render(), s.Chart(0, 0, 3).Canvas.Render(), "deterministic")
		})
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("primitives")
	require.True(t, ok)
	assert.Equal(t, braille.KeepFirst, s.Blend)
	assert.True(t, s.Animated)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestChartSizeOverride(t *testing.T) {
	s, ok := Lookup("sine")
	require.True(t, ok)
	c := s.Chart(20, 6, 0)
	assert.Equal(t, 20, c.Canvas.Width())
	assert.Equal(t, 6, c.Canvas.Height())
}

func TestAnimatedFramesDiffer(t *testing.T) {
	for _, name := range []string{"dual", "primitives"} {
		s, ok := Lookup(name)
		require.True(t, ok)
		a := s.Chart(0, 0, 0).Canvas.Render()
		b := s.Chart(0, 0, 10).Canvas.Render()
		assert.NotEqual(t, a, b, name)
	}
}

func TestScenesMutationIsolated(t *testing.T) {
	list := Scenes()
	list[0].Name = "changed"
	assert.Equal(t, "bars", Names()[0])
}

func TestBounce(t *testing.T) {
	tests := []struct {
		x0, v, lo, hi, t float64
		want             float64
	}{
		{0, 1, 0, 10, 5, 5},
		{0, 1, 0, 10, 12, 8},
		{0, 1, 0, 10, 20, 0},
		{0, -1, 0, 10, 3, 3},
		{-5, 2, -10, 10, 10, 5},
		{5, 1, 3, 3, 7, 3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, bounce(tt.x0, tt.v, tt.lo, tt.hi, tt.t), 1e-9, "%+v", tt)
	}
}

func TestEraser(t *testing.T) {
	cv := braille.New(10, 5)
	cv.RectFilled(0, 0, cv.PixelWidth(), cv.PixelHeight(), braille.Red)
	shape{x: 10, y: 10, size: 3, kind: eraser}.draw(cv)

	assert.False(t, cv.PixelScreen(10, 10))
	assert.False(t, cv.PixelScreen(13, 10))
	assert.True(t, cv.PixelScreen(14, 10))
	assert.True(t, cv.PixelScreen(0, 0))
}
