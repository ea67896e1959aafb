package geom

import "errors"

// ErrNoRecords is returned when a dataset parses but yields no usable rows.
var ErrNoRecords = errors.New("no records")

// FlatPoint is a pixel on the reference map image.
type FlatPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GeoDataPoint is a location with a non-negative magnitude.
type GeoDataPoint struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Value float64 `json:"value"`
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// extend grows b to include (x, y); first reports whether b is still unset.
func (b *BBox) extend(x, y float64, first bool) {
	if first {
		*b = BBox{MinX: x, MinY: y, MaxX: x, MaxY: y}
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// FlatBounds returns the pixel extent of points.
func FlatBounds(points []FlatPoint) BBox {
	var b BBox
	for i, p := range points {
		b.extend(p.X, p.Y, i == 0)
	}
	return b
}

// GeoBounds returns the lng/lat extent of points (X is longitude).
func GeoBounds(points []GeoDataPoint) BBox {
	var b BBox
	for i, p := range points {
		b.extend(p.Lng, p.Lat, i == 0)
	}
	return b
}
