package geom

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"brailleplot/internal/chart"

	"github.com/pkg/errors"
)

// LoadCSV reads a CSV file with x/y columns and returns its rows as points.
func LoadCSV(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, errors.Wrap(err, "csv")
	}
	defer f.Close()
	d, err := ReadCSV(f)
	if err != nil {
		return Data{}, errors.Wrapf(err, "csv %s", path)
	}
	return d, nil
}

// ReadCSV reads points from r. The header picks the columns:
// x|lon|lng|long|longitude and y|lat|latitude (case-insensitive, first match
// wins). Rows with missing or unparsable numbers are skipped.
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return Data{}, ErrEmpty
	}
	if err != nil {
		return Data{}, errors.Wrap(err, "header")
	}
	idxX, idxY := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxY == -1 {
				idxY = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxX == -1 {
				idxX = i
			}
		}
	}
	if idxX == -1 || idxY == -1 {
		return Data{}, errors.Errorf("x/y columns not found in header %q", header)
	}

	var d Data
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Data{}, errors.Wrap(err, "row")
		}
		if idxX >= len(row) || idxY >= len(row) {
			continue
		}
		x, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxX]), 64)
		y, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxY]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		d.addPoint(chart.Point{X: x, Y: y})
	}
	if d.Empty() {
		return Data{}, ErrEmpty
	}
	return d, nil
}
