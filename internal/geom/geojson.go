package geom

import (
	"encoding/json"
	"io"
	"os"

	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

// geoObject covers every GeoJSON object type; only the fields matching Type
// are populated.
type geoObject struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
	Geometry    *geoObject      `json:"geometry"`
	Features    []geoObject     `json:"features"`
	Geometries  []geoObject     `json:"geometries"`
}

// LoadGeoJSON reads a GeoJSON file and returns its points, lines and polygons.
func LoadGeoJSON(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "geojson")
	}
	defer f.Close()
	d, err := ReadGeoJSON(f)
	if err != nil {
		return Data{}, errors.Wrapf(err, "geojson %s", path)
	}
	return d, nil
}

// ReadGeoJSON decodes one GeoJSON object from r: a bare geometry, a
// GeometryCollection, a Feature or a FeatureCollection. Positions with fewer
// than two numbers are skipped, altitude is ignored.
func ReadGeoJSON(r io.Reader) (Data, error) {
	var root geoObject
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		if err == io.EOF {
			return Data{}, ErrEmpty
		}
		return Data{}, errors.Wrap(err, "decode")
	}
	if root.Type == "" {
		return Data{}, errors.New("missing type")
	}
	var d Data
	if err := walkGeoJSON(&d, root, true); err != nil {
		return Data{}, err
	}
	if d.Empty() {
		return Data{}, ErrEmpty
	}
	return d, nil
}

// walkGeoJSON adds o to d. Unknown types are an error only at the top level;
// inside collections they are ignored.
func walkGeoJSON(d *Data, o geoObject, top bool) error {
	switch o.Type {
	case "Feature":
		if o.Geometry != nil {
			return walkGeoJSON(d, *o.Geometry, false)
		}
	case "FeatureCollection":
		for _, f := range o.Features {
			if err := walkGeoJSON(d, f, false); err != nil {
				return err
			}
		}
	case "GeometryCollection":
		for _, g := range o.Geometries {
			if err := walkGeoJSON(d, g, false); err != nil {
				return err
			}
		}
	case "Point":
		var pos []float64
		if err := decodeCoords(o, &pos); err != nil {
			return err
		}
		if p, ok := position(pos); ok {
			d.addPoint(p)
		}
	case "MultiPoint":
		var pos [][]float64
		if err := decodeCoords(o, &pos); err != nil {
			return err
		}
		for _, p := range positions(pos) {
			d.addPoint(p)
		}
	case "LineString":
		var pos [][]float64
		if err := decodeCoords(o, &pos); err != nil {
			return err
		}
		d.addLine(positions(pos))
	case "MultiLineString":
		var lines [][][]float64
		if err := decodeCoords(o, &lines); err != nil {
			return err
		}
		for _, ls := range lines {
			d.addLine(positions(ls))
		}
	case "Polygon":
		var rings [][][]float64
		if err := decodeCoords(o, &rings); err != nil {
			return err
		}
		d.addPolygon(polygon(rings))
	case "MultiPolygon":
		var polys [][][][]float64
		if err := decodeCoords(o, &polys); err != nil {
			return err
		}
		for _, rings := range polys {
			d.addPolygon(polygon(rings))
		}
	default:
		if top {
			return errors.Wrapf(ErrUnsupported, "geojson type %q", o.Type)
		}
	}
	return nil
}

func decodeCoords(o geoObject, v any) error {
	if len(o.Coordinates) == 0 {
		return nil
	}
	if err := json.Unmarshal(o.Coordinates, v); err != nil {
		return errors.Wrapf(err, "%s coordinates", o.Type)
	}
	return nil
}

func position(pos []float64) (chart.Point, bool) {
	if len(pos) < 2 {
		return chart.Point{}, false
	}
	return chart.Point{X: pos[0], Y: pos[1]}, true
}

func positions(pos [][]float64) []chart.Point {
	out := make([]chart.Point, 0, len(pos))
	for _, p := range pos {
		if pt, ok := position(p); ok {
			out = append(out, pt)
		}
	}
	return out
}

func polygon(rings [][][]float64) [][]chart.Point {
	out := make([][]chart.Point, 0, len(rings))
	for _, ring := range rings {
		out = append(out, positions(ring))
	}
	return out
}
