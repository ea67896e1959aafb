package geom

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DecodeFlatPoints picks a reader for outline pixels from the extension of name.
func DecodeFlatPoints(name string, r io.Reader) ([]FlatPoint, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		return ReadFlatJSON(r)
	case ".csv":
		return ReadFlatCSV(r)
	case ".wkt":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("wkt: %w", err)
		}
		return ParseFlatWKT(string(data))
	default:
		return nil, fmt.Errorf("unsupported outline file: %q", ext)
	}
}

// DecodeGeoData picks a reader for magnitude data from the extension of name.
func DecodeGeoData(name string, r io.Reader) ([]GeoDataPoint, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".csv":
		return ReadGeoCSV(r)
	case ".geojson", ".json":
		return ReadGeoJSON(r)
	case ".kml":
		return ReadKML(r)
	default:
		return nil, fmt.Errorf("unsupported data file: %q", ext)
	}
}

// LoadFlatPoints reads outline pixels from a .json, .csv or .wkt file.
func LoadFlatPoints(path string) ([]FlatPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := DecodeFlatPoints(path, f)
	if err != nil {
		return nil, fmt.Errorf("geom: %s: %w", filepath.Base(path), err)
	}
	return pts, nil
}

// LoadGeoData reads magnitude points from a .csv, .geojson/.json or .kml file.
func LoadGeoData(path string) ([]GeoDataPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pts, err := DecodeGeoData(path, f)
	if err != nil {
		return nil, fmt.Errorf("geom: %s: %w", filepath.Base(path), err)
	}
	return pts, nil
}

// ParseGeoData reads magnitude points from pasted text, telling GeoJSON,
// KML and CSV apart by the first character.
func ParseGeoData(text string) ([]GeoDataPoint, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("geom: paste: %w", ErrNoRecords)
	}
	var (
		pts []GeoDataPoint
		err error
	)
	switch text[0] {
	case '{':
		pts, err = ReadGeoJSON(strings.NewReader(text))
	case '<':
		pts, err = ReadKML(strings.NewReader(text))
	default:
		pts, err = ReadGeoCSV(strings.NewReader(text))
	}
	if err != nil {
		return nil, fmt.Errorf("geom: paste: %w", err)
	}
	return pts, nil
}
