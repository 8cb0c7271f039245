package geom

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"
	"strings"

	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

// LoadKML reads a KML file and returns the coordinates of its Point,
// LineString and Polygon elements.
func LoadKML(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "kml")
	}
	defer f.Close()
	d, err := ReadKML(f)
	if err != nil {
		return Data{}, errors.Wrapf(err, "kml %s", path)
	}
	return d, nil
}

// ReadKML streams r and collects geometry wherever it is nested (Document,
// Folder, MultiGeometry). KML coordinates are "lon,lat[,alt]" tuples
// separated by whitespace; altitude is ignored.
func ReadKML(r io.Reader) (Data, error) {
	var (
		d      Data
		stack  []string
		coords strings.Builder
		rings  [][]chart.Point
		inPoly bool
	)
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, errors.Wrap(err, "decode")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			stack = append(stack, t.Name.Local)
			switch t.Name.Local {
			case "coordinates":
				coords.Reset()
			case "Polygon":
				inPoly, rings = true, nil
			}
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1] == "coordinates" {
				coords.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "coordinates":
				if len(stack) < 2 {
					break
				}
				pts := kmlTuples(coords.String())
				switch stack[len(stack)-2] {
				case "Point":
					for _, p := range pts {
						d.addPoint(p)
					}
				case "LineString":
					d.addLine(pts)
				case "LinearRing":
					if inPoly {
						rings = append(rings, pts)
					} else {
						d.addLine(pts)
					}
				}
			case "Polygon":
				d.addPolygon(rings)
				inPoly, rings = false, nil
			}
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if d.Empty() {
		return Data{}, ErrEmpty
	}
	return d, nil
}

func kmlTuples(s string) []chart.Point {
	var out []chart.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			continue
		}
		lon, err1 := strconv.ParseFloat(vals[0], 64)
		lat, err2 := strconv.ParseFloat(vals[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, chart.Point{X: lon, Y: lat})
	}
	return out
}
