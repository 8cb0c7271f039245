package tui

import (
	"log/slog"

	"brailleplot/internal/chart"
	"brailleplot/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	mapX, mapY         int // top-left screen cell of the map area
	mapW, mapH         int
	cols, rows         int // canvas size in cells
	canvasX, canvasY   int // top-left screen cell of the canvas body
}

func (m Model) layout() layout {
	var l layout
	l.contentW = max(10, m.width)
	l.contentH = max(4, m.height-headerHeight-footerHeight)
	l.mapY = headerHeight
	l.mapW = l.contentW
	if m.showSidebar {
		l.mapX = sidebarWidth + 1
		l.mapW = l.contentW - sidebarWidth - 1
	}
	l.mapW = max(l.mapW, 10)
	l.mapH = l.contentH

	l.cols, l.rows = l.mapW, l.mapH
	l.canvasX, l.canvasY = l.mapX, l.mapY
	if m.title() != "" {
		l.rows--
		l.canvasY++
	}
	if m.cfg.Border {
		l.cols -= 2
		l.rows -= 2
		l.canvasX++
		l.canvasY++
	}
	l.cols, l.rows = max(l.cols, 0), max(l.rows, 0)
	return l
}

// redraw rebuilds the chart from scratch at the current layout size.
func (m *Model) redraw() {
	l := m.layout()
	c := chart.New(l.cols, l.rows)
	c.Canvas.Blend = m.blend
	switch {
	case m.scene != nil:
		m.scene.Draw(c, m.frame)
	case m.data.Vertices() > 0:
		geom.Plot(c, m.data, m.palette)
	}
	m.chart = c
	m.refreshStats()
	slog.Debug("redraw", "cols", l.cols, "rows", l.rows, "source", m.sourceName, "frame", m.frame)
}

// cellToData converts a canvas cell back to the data coordinate at its center.
func (m Model) cellToData(col, row int) (chart.Point, bool) {
	if m.scene != nil || m.data.Vertices() == 0 || m.chart == nil {
		return chart.Point{}, false
	}
	cv := m.chart.Canvas
	if col < 0 || col >= cv.Width() || row < 0 || row >= cv.Height() {
		return chart.Point{}, false
	}
	pw, ph := float64(cv.PixelWidth()), float64(cv.PixelHeight())
	if pw <= 1 || ph <= 1 {
		return chart.Point{}, false
	}
	px := float64(col*2) + 0.5
	py := ph - 1 - (float64(row*4) + 1.5)
	xr, yr := m.data.BBox.Ranges()
	return chart.Point{
		X: xr.Min + px/(pw-1)*xr.Span(),
		Y: yr.Min + py/(ph-1)*yr.Span(),
	}, true
}
