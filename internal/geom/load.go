package geom

import (
	"os"
	"path/filepath"
	"strings"

	"brailleplot/internal/braille"
	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

// Supported reports whether Load understands path's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".geojson", ".json", ".kml", ".wkt":
		return true
	}
	return false
}

// Load reads path, picking the format from its extension.
func Load(path string) (Data, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, errors.Wrap(err, "wkt")
		}
		d, err := ParseWKT(string(b))
		if err != nil {
			return Data{}, errors.Wrapf(err, "wkt %s", path)
		}
		return d, nil
	}
	return Data{}, errors.Wrapf(ErrUnsupported, "%s", path)
}

// Plot draws d onto c in one shared range derived from d.BBox: polygon
// rings as closed outlines, then lines, then points. Layers take palette
// colors in that order, cycling; an empty palette draws uncolored.
func Plot(c *chart.Chart, d Data, palette []braille.Color) {
	if d.Vertices() == 0 {
		return
	}
	pick := func(i int) braille.Color {
		if len(palette) == 0 {
			return braille.NoColor
		}
		return palette[i%len(palette)]
	}
	xr, yr := d.BBox.Ranges()
	for _, poly := range d.Polygons {
		for _, ring := range poly {
			if len(ring) == 1 {
				c.ScatterIn(ring, xr, yr, pick(0))
				continue
			}
			c.PolygonIn(ring, xr, yr, pick(0))
		}
	}
	for _, ls := range d.Lines {
		if len(ls) == 1 {
			c.ScatterIn(ls, xr, yr, pick(1))
			continue
		}
		c.LineChartIn(ls, xr, yr, pick(1))
	}
	c.ScatterIn(d.Points, xr, yr, pick(2))
}
