package geom

import (
	"strconv"
	"strings"

	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

// ParseWKT parses one WKT geometry. Supported: POINT, MULTIPOINT,
// LINESTRING, MULTILINESTRING, POLYGON and MULTIPOLYGON, in 2D or with Z/M
// ordinates (ignored). Tuples that are not numbers are skipped.
func ParseWKT(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, ErrEmpty
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		if strings.HasSuffix(strings.ToUpper(s), "EMPTY") {
			return Data{}, ErrEmpty
		}
		return Data{}, errors.Errorf("wkt %q: missing parentheses", s)
	}
	head := strings.Fields(s[:i])
	if len(head) == 0 {
		return Data{}, errors.Errorf("wkt %q: missing geometry type", s)
	}
	kind := strings.ToUpper(head[0])
	body := s[i+1 : j]

	var d Data
	switch kind {
	case "POINT", "MULTIPOINT":
		// MULTIPOINT accepts both (1 2, 3 4) and ((1 2), (3 4)).
		flat := strings.NewReplacer("(", " ", ")", " ").Replace(body)
		for _, p := range parseTuples(flat) {
			d.addPoint(p)
		}
	case "LINESTRING":
		d.addLine(parseTuples(body))
	case "MULTILINESTRING":
		for _, g := range groups(body) {
			d.addLine(parseTuples(g))
		}
	case "POLYGON":
		d.addPolygon(parseRings(body))
	case "MULTIPOLYGON":
		for _, g := range groups(body) {
			d.addPolygon(parseRings(g))
		}
	default:
		return Data{}, errors.Wrapf(ErrUnsupported, "wkt type %q", kind)
	}
	if d.Empty() {
		return Data{}, ErrEmpty
	}
	return d, nil
}

// parseTuples splits "x y, x y, ..." into points.
func parseTuples(block string) []chart.Point {
	var out []chart.Point
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, chart.Point{X: x, Y: y})
	}
	return out
}

func parseRings(body string) [][]chart.Point {
	var rings [][]chart.Point
	for _, g := range groups(body) {
		rings = append(rings, parseTuples(g))
	}
	return rings
}

// groups returns the contents of each top-level parenthesized group in s:
// "(a), (b (c))" yields "a" and "b (c)".
func groups(s string) []string {
	var out []string
	depth, start := 0, 0
	for i, ch := range s {
		switch ch {
		case '(':
			if depth == 0 {
				start = i + 1
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				out = append(out, s[start:i])
			}
		}
	}
	return out
}
