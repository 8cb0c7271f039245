package tui

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"brailleplot/internal/chart"
)

var statsColumns = []table.Column{
	{Title: "layer", Width: 9},
	{Title: "items", Width: 7},
	{Title: "vertices", Width: 9},
	{Title: "x range", Width: 24},
	{Title: "y range", Width: 24},
}

// extent returns the min/max of the finite points in every layer given.
func extent(layers ...[]chart.Point) (chart.Range, chart.Range, int) {
	xr := chart.Range{Min: math.Inf(1), Max: math.Inf(-1)}
	yr := xr
	n := 0
	for _, pts := range layers {
		for _, p := range pts {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				continue
			}
			xr.Min, xr.Max = min(xr.Min, p.X), max(xr.Max, p.X)
			yr.Min, yr.Max = min(yr.Min, p.Y), max(yr.Max, p.Y)
			n++
		}
	}
	return xr, yr, n
}

func fmtRange(r chart.Range, n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%.4g .. %.4g", r.Min, r.Max)
}

func layerRow(name string, items int, layers [][]chart.Point) table.Row {
	xr, yr, n := extent(layers...)
	return table.Row{name, strconv.Itoa(items), strconv.Itoa(n), fmtRange(xr, n), fmtRange(yr, n)}
}

// statsRows describes the loaded dataset per layer, then the canvas itself.
func (m Model) statsRows() []table.Row {
	var rows []table.Row
	if m.scene == nil {
		var lines, rings [][]chart.Point
		lines = append(lines, m.data.Lines...)
		for _, poly := range m.data.Polygons {
			rings = append(rings, poly...)
		}
		rows = append(rows,
			layerRow("points", len(m.data.Points), [][]chart.Point{m.data.Points}),
			layerRow("lines", len(m.data.Lines), lines),
			layerRow("polygons", len(m.data.Polygons), rings),
		)
	}
	if m.chart != nil {
		cv := m.chart.Canvas
		lit := 0
		for row := 0; row < cv.Height(); row++ {
			for col := 0; col < cv.Width(); col++ {
				mask, _, _, _ := cv.Cell(col, row)
				lit += bits.OnesCount8(mask)
			}
		}
		rows = append(rows, table.Row{
			"canvas",
			fmt.Sprintf("%dx%d", cv.Width(), cv.Height()),
			strconv.Itoa(lit),
			fmt.Sprintf("0 .. %d px", max(cv.PixelWidth()-1, 0)),
			fmt.Sprintf("0 .. %d px", max(cv.PixelHeight()-1, 0)),
		})
	}
	return rows
}

// refreshStats rebuilds the stats table rows from the current source.
func (m *Model) refreshStats() {
	m.tbl.SetRows(m.statsRows())
}
