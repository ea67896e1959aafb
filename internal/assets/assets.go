// Package assets embeds the sample datasets the program falls back to when
// no files are given.
package assets

import (
	"bytes"
	_ "embed"

	"geoglobe/internal/geom"
)

const (
	OutlineName = "outline.json"
	DataName    = "data.csv"
)

//go:embed outline.json
var outlineJSON []byte

//go:embed data.csv
var dataCSV []byte

// Outline returns the embedded continent outline, as pixels on a 4098x1968
// equirectangular map.
func Outline() ([]geom.FlatPoint, error) {
	return geom.DecodeFlatPoints(OutlineName, bytes.NewReader(outlineJSON))
}

// Data returns the embedded city magnitudes.
func Data() ([]geom.GeoDataPoint, error) {
	return geom.DecodeGeoData(DataName, bytes.NewReader(dataCSV))
}
