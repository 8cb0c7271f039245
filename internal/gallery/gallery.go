// Package gallery holds named demo scenes built from chart primitives.
package gallery

import (
	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
)

// Scene is a named drawing. Draw must be deterministic for a given size and
// frame; only Animated scenes look at frame.
type Scene struct {
	Name  string
	Title string

	// Width and Height are the preferred canvas size in cells.
	Width, Height int

	// Blend is the canvas blend mode the scene is designed for.
	Blend braille.BlendMode

	Animated bool

	Draw func(c *chart.Chart, frame int)
}

// Chart draws s at frame onto a new chart. Zero width or height falls back
// to the scene's preferred size.
func (s Scene) Chart(width, height, frame int) *chart.Chart {
	if width <= 0 {
		width = s.Width
	}
	if height <= 0 {
		height = s.Height
	}
	c := chart.New(width, height)
	c.Canvas.Blend = s.Blend
	s.Draw(c, frame)
	return c
}

var scenes = []Scene{
	{Name: "bars", Title: "Color bars", Width: 60, Height: 10, Draw: drawBars},
	{Name: "scatter", Title: "Scatter plot", Width: 60, Height: 15, Draw: drawScatter},
	{Name: "geometry", Title: "Geometry", Width: 40, Height: 20, Draw: drawGeometry},
	{Name: "pie", Title: "Pie chart", Width: 40, Height: 20, Draw: drawPie},
	{Name: "spiral", Title: "Logarithmic spiral", Width: 60, Height: 20, Draw: drawSpiral},
	{Name: "sine", Title: "Sine wave", Width: 60, Height: 15, Draw: drawSine},
	{Name: "functions", Title: "Functions, grid and axes", Width: 60, Height: 15, Draw: drawFunctions},
	{Name: "autorange", Title: "Auto-scaled series", Width: 60, Height: 15, Draw: drawAutoRange},
	{Name: "dual", Title: "Dual system", Width: 60, Height: 15, Animated: true, Draw: drawDual},
	{Name: "primitives", Title: "Primitives and blending", Width: 60, Height: 20,
		Blend: braille.KeepFirst, Animated: true, Draw: drawPrimitives},
}

// Scenes returns every scene in display order.
func Scenes() []Scene {
	return append([]Scene(nil), scenes...)
}

// Names returns the scene names in display order.
func Names() []string {
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a scene by name.
func Lookup(name string) (Scene, bool) {
	for _, s := range scenes {
		if s.Name == name {
			return s, true
		}
	}
	return Scene{}, false
}
