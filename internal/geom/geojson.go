package geom

import (
	"fmt"
	"io"

	geojson "github.com/paulmach/go.geojson"
)

// ValueProperty is the feature property holding a point's magnitude.
const ValueProperty = "value"

// ReadGeoJSON extracts Point and MultiPoint features carrying a numeric
// "value" property from a FeatureCollection. Coordinates are [lng, lat].
func ReadGeoJSON(r io.Reader) ([]GeoDataPoint, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var out []GeoDataPoint
	add := func(pos []float64, v float64) {
		if len(pos) < 2 {
			return
		}
		out = append(out, GeoDataPoint{Lat: pos[1], Lng: pos[0], Value: v})
	}
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			continue
		}
		v, err := f.PropertyFloat64(ValueProperty)
		if err != nil {
			continue
		}
		switch {
		case f.Geometry.IsPoint():
			add(f.Geometry.Point, v)
		case f.Geometry.IsMultiPoint():
			for _, p := range f.Geometry.MultiPoint {
				add(p, v)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("geojson: %w", ErrNoRecords)
	}
	return out, nil
}
