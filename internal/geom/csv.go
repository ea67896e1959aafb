package geom

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// column aliases, matched case-insensitively against the header row
var (
	latColumns   = []string{"lat", "latitude"}
	lngColumns   = []string{"lng", "lon", "long", "longitude"}
	valueColumns = []string{"value", "size", "count", "magnitude"}
	xColumns     = []string{"x", "px"}
	yColumns     = []string{"y", "py"}
)

func readCSV(r io.Reader) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(recs) == 0 {
		return nil, nil, fmt.Errorf("empty csv: %w", ErrNoRecords)
	}
	return recs[0], recs[1:], nil
}

func columnIndex(header []string, aliases []string) int {
	for i, h := range header {
		lh := strings.ToLower(strings.TrimSpace(h))
		for _, a := range aliases {
			if lh == a {
				return i
			}
		}
	}
	return -1
}

func field(row []string, idx int) (float64, bool) {
	if idx < 0 || idx >= len(row) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ReadGeoCSV reads lat/lng/value rows. Rows with a missing or non-numeric
// field are skipped.
func ReadGeoCSV(r io.Reader) ([]GeoDataPoint, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	iLat, iLng, iVal := columnIndex(header, latColumns), columnIndex(header, lngColumns), columnIndex(header, valueColumns)
	if iLat < 0 || iLng < 0 || iVal < 0 {
		return nil, fmt.Errorf("csv: lat/lng/value columns not found in %v", header)
	}
	var out []GeoDataPoint
	for _, row := range rows {
		lat, ok1 := field(row, iLat)
		lng, ok2 := field(row, iLng)
		val, ok3 := field(row, iVal)
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		out = append(out, GeoDataPoint{Lat: lat, Lng: lng, Value: val})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("csv: %w", ErrNoRecords)
	}
	return out, nil
}

// ReadFlatCSV reads x/y pixel rows.
func ReadFlatCSV(r io.Reader) ([]FlatPoint, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	ix, iy := columnIndex(header, xColumns), columnIndex(header, yColumns)
	if ix < 0 || iy < 0 {
		return nil, fmt.Errorf("csv: x/y columns not found in %v", header)
	}
	var out []FlatPoint
	for _, row := range rows {
		x, ok1 := field(row, ix)
		y, ok2 := field(row, iy)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, FlatPoint{X: x, Y: y})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("csv: %w", ErrNoRecords)
	}
	return out, nil
}
