// Package geom loads small vector datasets (CSV, GeoJSON, WKT, KML) and
// plots them onto a chart.
package geom

import (
	"math"

	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

var (
	// ErrEmpty is returned when an input holds no usable coordinates.
	ErrEmpty = errors.New("no coordinates found")
	// ErrUnsupported is returned for unknown file extensions and geometry types.
	ErrUnsupported = errors.New("unsupported format")
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// plotPadding widens the bbox on every side when it becomes a chart range.
const plotPadding = 0.05

// Ranges returns the chart ranges covering the box with 5% padding. A
// degenerate side is widened the same way chart.AutoRange widens it.
func (b BBox) Ranges() (chart.Range, chart.Range) {
	return chart.AutoRange([]chart.Point{{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MaxY}}, plotPadding)
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   []chart.Point
	Lines    [][]chart.Point
	Polygons [][][]chart.Point // rings: first outer, following holes
	BBox     BBox

	n int // vertices seen, for BBox seeding
}

// Empty reports whether d holds no geometry.
func (d *Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// Vertices returns the number of finite coordinates folded into the BBox.
func (d *Data) Vertices() int { return d.n }

func finite(p chart.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// extend folds p into the BBox. Non-finite coordinates are not folded in.
func (d *Data) extend(p chart.Point) {
	if !finite(p) {
		return
	}
	if d.n == 0 {
		d.BBox = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	} else {
		d.BBox.MinX = min(d.BBox.MinX, p.X)
		d.BBox.MinY = min(d.BBox.MinY, p.Y)
		d.BBox.MaxX = max(d.BBox.MaxX, p.X)
		d.BBox.MaxY = max(d.BBox.MaxY, p.Y)
	}
	d.n++
}

func (d *Data) addPoint(p chart.Point) {
	if !finite(p) {
		return
	}
	d.extend(p)
	d.Points = append(d.Points, p)
}

func (d *Data) addLine(ls []chart.Point) {
	if len(ls) == 0 {
		return
	}
	for _, p := range ls {
		d.extend(p)
	}
	d.Lines = append(d.Lines, ls)
}

func (d *Data) addPolygon(rings [][]chart.Point) {
	var kept [][]chart.Point
	for _, ring := range rings {
		if len(ring) == 0 {
			continue
		}
		for _, p := range ring {
			d.extend(p)
		}
		kept = append(kept, ring)
	}
	if len(kept) > 0 {
		d.Polygons = append(d.Polygons, kept)
	}
}

// Merge appends o's geometry to d, growing d.BBox to cover it.
func (d *Data) Merge(o Data) {
	for _, p := range o.Points {
		d.addPoint(p)
	}
	for _, ls := range o.Lines {
		d.addLine(ls)
	}
	for _, poly := range o.Polygons {
		d.addPolygon(poly)
	}
}
