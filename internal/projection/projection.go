// Package projection maps flat-map pixels and geographic coordinates onto
// positions on a sphere.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s1"
)

// SphereCoordinate is a position on or near a sphere centred at the origin.
type SphereCoordinate struct {
	DX float64
	DY float64
	DZ float64
}

// Vec3 returns the coordinate as a mathgl vector.
func (c SphereCoordinate) Vec3() mgl64.Vec3 { return mgl64.Vec3{c.DX, c.DY, c.DZ} }

// Len is the distance from the sphere centre.
func (c SphereCoordinate) Len() float64 { return c.Vec3().Len() }

// Policy decides which projected coordinates are kept.
type Policy int

const (
	// ZeroAxisInvalid rejects a coordinate when any axis is exactly zero.
	// Points on the equator or the seam meridians are dropped too.
	ZeroAxisInvalid Policy = iota
	// FiniteOnly rejects only NaN and infinite axes.
	FiniteOnly
)

// ParsePolicy maps the config spelling of a policy to its value.
func ParsePolicy(s string) (Policy, bool) {
	switch s {
	case "", "zero-axis":
		return ZeroAxisInvalid, true
	case "finite":
		return FiniteOnly, true
	}
	return ZeroAxisInvalid, false
}

func (p Policy) String() string {
	if p == FiniteOnly {
		return "finite"
	}
	return "zero-axis"
}

// Valid reports whether c survives the policy.
func (c SphereCoordinate) Valid(p Policy) bool {
	for _, v := range [3]float64{c.DX, c.DY, c.DZ} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
		if p == ZeroAxisInvalid && v == 0 {
			return false
		}
	}
	return true
}

func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// FlatToSphere converts a pixel on a mapWidth x mapHeight equirectangular
// image into a point on a sphere of the given radius. The horizontal pixel
// axis spans -180..180 degrees and the vertical one -90..90, both measured
// from the image centre and inverted.
func FlatToSphere(x, y, mapWidth, mapHeight, radius float64) SphereCoordinate {
	halfW := mapWidth / 2
	halfH := mapHeight / 2
	lat := radians((x - halfW) / halfW * -180)
	lng := radians((y - halfH) / halfH * -90)

	ring := math.Cos(lng) * radius
	return SphereCoordinate{
		DX: math.Cos(lat) * ring,
		DY: math.Sin(lng) * radius,
		DZ: math.Sin(lat) * ring,
	}
}

// LatLngToSphere converts degrees of latitude and longitude to a point one
// unit inside a sphere of the given radius. Longitude is shifted by 180
// degrees so that the seam lines up with the map texture.
func LatLngToSphere(lat, lng, radius float64) SphereCoordinate {
	phi := radians(lat)
	theta := radians(lng - 180)
	r := radius - 1
	return SphereCoordinate{
		DX: -r * math.Cos(phi) * math.Cos(theta),
		DY: r * math.Sin(phi),
		DZ: r * math.Cos(phi) * math.Sin(theta),
	}
}
