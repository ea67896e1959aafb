package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Geometry is an indexed triangle list.
type Geometry struct {
	Positions []mgl64.Vec3
	Indices   []uint32 // three per triangle
}

// VertexCount returns the number of vertices.
func (g *Geometry) VertexCount() int { return len(g.Positions) }

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int { return len(g.Indices) / 3 }

// IsEmpty reports whether g has no vertices.
func (g *Geometry) IsEmpty() bool { return g == nil || len(g.Positions) == 0 }

// NewSphereGeometry builds a UV sphere centred on the origin. Segment counts
// below 3 (width) or 2 (height) are raised to those minimums.
func NewSphereGeometry(radius float64, widthSegments, heightSegments int) *Geometry {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	g := &Geometry{
		Positions: make([]mgl64.Vec3, 0, (widthSegments+1)*(heightSegments+1)),
	}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float64(iy) / float64(heightSegments)
		theta := v * math.Pi
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float64(ix) / float64(widthSegments)
			phi := u * 2 * math.Pi
			row[ix] = uint32(len(g.Positions))
			g.Positions = append(g.Positions, mgl64.Vec3{
				-radius * math.Cos(phi) * math.Sin(theta),
				radius * math.Cos(theta),
				radius * math.Sin(phi) * math.Sin(theta),
			})
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			// pole rows collapse to a single point, skip their degenerate half
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}
	return g
}

// NewBoxGeometry builds an axis-aligned box centred on the origin.
func NewBoxGeometry(width, height, depth float64) *Geometry {
	x, y, z := width/2, height/2, depth/2
	g := &Geometry{
		Positions: []mgl64.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
		Indices: []uint32{
			0, 2, 1, 0, 3, 2, // -z
			4, 5, 6, 4, 6, 7, // +z
			0, 1, 5, 0, 5, 4, // -y
			3, 7, 6, 3, 6, 2, // +y
			0, 4, 7, 0, 7, 3, // -x
			1, 2, 6, 1, 6, 5, // +x
		},
	}
	return g
}

// Translate moves every vertex in place and returns g.
func (g *Geometry) Translate(x, y, z float64) *Geometry {
	d := mgl64.Vec3{x, y, z}
	for i := range g.Positions {
		g.Positions[i] = g.Positions[i].Add(d)
	}
	return g
}

// ApplyMatrix transforms every vertex in place and returns g.
func (g *Geometry) ApplyMatrix(m mgl64.Mat4) *Geometry {
	for i, p := range g.Positions {
		g.Positions[i] = mgl64.TransformCoordinate(p, m)
	}
	return g
}

// Bounds returns the axis-aligned bounding box. An empty geometry yields
// zero vectors.
func (g *Geometry) Bounds() (lo, hi mgl64.Vec3) {
	if g.IsEmpty() {
		return
	}
	lo, hi = g.Positions[0], g.Positions[0]
	for _, p := range g.Positions[1:] {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// MergeGeometries concatenates geometries into one, offsetting indices. It
// returns nil when there is nothing to merge.
func MergeGeometries(geoms []*Geometry) *Geometry {
	var nv, ni int
	for _, g := range geoms {
		if g.IsEmpty() {
			continue
		}
		nv += len(g.Positions)
		ni += len(g.Indices)
	}
	if nv == 0 {
		return nil
	}
	out := &Geometry{
		Positions: make([]mgl64.Vec3, 0, nv),
		Indices:   make([]uint32, 0, ni),
	}
	for _, g := range geoms {
		if g.IsEmpty() {
			continue
		}
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, g.Positions...)
		for _, i := range g.Indices {
			out.Indices = append(out.Indices, base+i)
		}
	}
	return out
}
