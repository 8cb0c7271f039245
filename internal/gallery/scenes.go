package gallery

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"
)

// seed keeps the random scenes stable between runs.
const seed = 0x5eed

// gradient returns the color at t in [0, 1] on the HCL blend from a to b.
func gradient(a, b colorful.Color, t float64) braille.Color {
	return braille.FromColorful(a.BlendHcl(b, t))
}

func drawBars(c *chart.Chart, _ int) {
	c.BarChart([]chart.Value{
		{V: 30, Color: braille.Red},
		{V: 55, Color: braille.Green},
		{V: 90, Color: braille.Blue},
		{V: 45, Color: braille.Yellow},
		{V: 70, Color: braille.Magenta},
		{V: 25},
	})
}

func drawScatter(c *chart.Chart, _ int) {
	rng := rand.New(rand.NewPCG(seed, 2))
	a := make([]chart.Point, 150)
	b := make([]chart.Point, 150)
	for i := range a {
		a[i] = chart.Point{X: rng.Float64() * 60, Y: rng.Float64() * 60}
		b[i] = chart.Point{X: 40 + rng.Float64()*60, Y: 40 + rng.Float64()*60}
	}
	xr, yr := chart.AutoRange(append(append([]chart.Point(nil), a...), b...), 0.05)
	c.ScatterIn(a, xr, yr, braille.Red)
	c.ScatterIn(b, xr, yr, braille.Cyan)
}

func drawGeometry(c *chart.Chart, _ int) {
	c.DrawCircle(chart.Point{X: 0.5, Y: 0.5}, 0.4, braille.Green)
	c.Polygon([]chart.Point{{X: 0.1, Y: 0.1}, {X: 0.5, Y: 0.9}, {X: 0.9, Y: 0.1}}, braille.Magenta)
}

func drawPie(c *chart.Chart, _ int) {
	c.PieChart([]chart.Value{
		{V: 30, Color: braille.Red},
		{V: 20, Color: braille.Blue},
		{V: 15, Color: braille.Green},
		{V: 25, Color: braille.Yellow},
		{V: 10, Color: braille.White},
	})
}

func spiral() []chart.Point {
	var pts []chart.Point
	for t := 0.0; t < 8*math.Pi; t += 0.05 {
		r := 0.1 * math.Exp(0.2*t)
		pts = append(pts, chart.Point{X: r * math.Cos(t), Y: r * math.Sin(t)})
	}
	return pts
}

func drawSpiral(c *chart.Chart, _ int) {
	pts := spiral()
	xr, yr := chart.AutoRange(pts, 0.1)
	c.DrawGrid(8, 4, braille.RGB(50, 50, 50))
	c.DrawAxes(xr, yr, braille.White)

	inner, _ := colorful.Hex("#3b82f6")
	outer, _ := colorful.Hex("#e879f9")
	for i, p := range pts {
		t := float64(i) / float64(len(pts)-1)
		c.ScatterIn([]chart.Point{p}, xr, yr, gradient(inner, outer, t))
	}
	c.Text("Spiral Analysis", 0.35, 0.9, braille.White)
}

func drawSine(c *chart.Chart, _ int) {
	c.DrawGrid(10, 4, braille.RGB(100, 100, 100))
	c.DrawAxes(chart.Range{Min: 0, Max: 10}, chart.Range{Min: -1, Max: 1}, braille.White)
	c.PlotFunction(math.Sin, 0, 10, braille.Cyan)
	c.Text("Sine Wave", 0.4, 0.9, braille.White)
}

func drawFunctions(c *chart.Chart, _ int) {
	c.DrawGrid(10, 4, braille.RGB(80, 80, 80))
	c.DrawAxes(chart.Range{Min: 0, Max: 10}, chart.Range{Min: -1.5, Max: 1.5}, braille.White)
	c.PlotFunction(math.Sin, 0, 10, braille.Cyan)
	c.PlotFunction(func(x float64) float64 { return math.Cos(x*0.5) * 0.5 }, 0, 10, braille.Magenta)
	c.Text("sin(x)", 0.75, 0.85, braille.Cyan)
	c.Text("0.5*cos(0.5x)", 0.55, 0.10, braille.Magenta)
}

func drawAutoRange(c *chart.Chart, _ int) {
	pts := make([]chart.Point, 50)
	for i := range pts {
		x := float64(i)
		pts[i] = chart.Point{X: x, Y: math.Sin(x*0.2)*50 + 20}
	}
	xr, yr := chart.AutoRange(pts, 0.1)
	c.DrawGrid(10, 4, braille.RGB(40, 40, 40))
	c.DrawAxes(xr, yr, braille.White)
	c.LineChartIn(pts, xr, yr, braille.Yellow)
	c.Text("Auto-Scaled", 0.4, 0.9, braille.Yellow)
}

func drawDual(c *chart.Chart, frame int) {
	phase := float64(frame) * 0.1
	c.DrawGrid(10, 4, braille.RGB(60, 60, 60))
	c.DrawAxes(chart.Range{Min: 0, Max: 10}, chart.Range{Min: -1.5, Max: 1.5}, braille.White)
	c.PlotFunction(func(x float64) float64 {
		return math.Sin(x+phase) * math.Cos(x*0.5)
	}, 0, 10, braille.Cyan)
	c.PlotFunction(func(x float64) float64 {
		return math.Cos(x-phase*1.5)*0.5 - 0.5
	}, 0, 10, braille.Magenta)
	c.Text("Dual System", 0.40, 0.9, braille.Yellow)
}
