// Package scene is a small retained scene graph: meshes made of indexed
// triangles and a flat material, grouped under a shared transform and viewed
// through a perspective camera. It carries no rendering code.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	Origin = mgl64.Vec3{0, 0, 0}
	Up     = mgl64.Vec3{0, 1, 0}
)

// Object is a position, orientation and scale. The zero value is not usable;
// start from NewObject.
type Object struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// NewObject returns an identity transform.
func NewObject() Object {
	return Object{Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix composes translation, rotation and scale.
func (o *Object) Matrix() mgl64.Mat4 {
	t := mgl64.Translate3D(o.Position[0], o.Position[1], o.Position[2])
	s := mgl64.Scale3D(o.Scale[0], o.Scale[1], o.Scale[2])
	return t.Mul4(o.Rotation.Mat4()).Mul4(s)
}

// RotateY rotates the object about its local vertical axis.
func (o *Object) RotateY(angle float64) {
	o.Rotation = o.Rotation.Mul(mgl64.QuatRotate(angle, Up)).Normalize()
}

// LookAt orients the object so that its local +Z axis points at target.
func (o *Object) LookAt(target mgl64.Vec3) {
	o.Rotation = mgl64.Mat4ToQuat(lookAtRotation(target, o.Position, Up)).Normalize()
}

// Forward is the local +Z axis in parent space.
func (o *Object) Forward() mgl64.Vec3 {
	return o.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// lookAtRotation returns a rotation whose Z column points from target to eye.
func lookAtRotation(eye, target, up mgl64.Vec3) mgl64.Mat4 {
	z := eye.Sub(target)
	if z.LenSqr() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()
	x := up.Cross(z)
	if x.LenSqr() == 0 {
		// up and z are parallel, nudge z off the axis
		if math.Abs(up[2]) == 1 {
			z[0] += 0.0001
		} else {
			z[2] += 0.0001
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)
	return mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
}

// Material is an unlit flat color.
type Material struct {
	Color       colorful.Color
	Opacity     float64
	Transparent bool
}

// NewBasicMaterial returns an opaque material.
func NewBasicMaterial(c colorful.Color) Material {
	return Material{Color: c, Opacity: 1}
}

// Kind tags a mesh with its role on the globe.
type Kind int

const (
	KindEarth Kind = iota
	KindPointCloud
	KindBar
)

func (k Kind) String() string {
	switch k {
	case KindEarth:
		return "earth"
	case KindPointCloud:
		return "points"
	case KindBar:
		return "bar"
	}
	return "unknown"
}

// Mesh is a geometry drawn with one material.
type Mesh struct {
	Object
	Kind     Kind
	Geometry *Geometry
	Material Material
	// Value is the magnitude a bar encodes; zero for other kinds.
	Value float64
}

// NewMesh wraps geometry and material with an identity transform.
func NewMesh(kind Kind, g *Geometry, m Material) *Mesh {
	return &Mesh{Object: NewObject(), Kind: kind, Geometry: g, Material: m}
}

// Group is a transform shared by its children.
type Group struct {
	Object
	Children []*Mesh
}

// NewGroup returns an empty group with an identity transform.
func NewGroup() *Group {
	return &Group{Object: NewObject()}
}

// Add appends meshes to the group. Nil meshes are ignored.
func (g *Group) Add(meshes ...*Mesh) {
	for _, m := range meshes {
		if m != nil {
			g.Children = append(g.Children, m)
		}
	}
}

// Count returns how many children have the given kind.
func (g *Group) Count(k Kind) int {
	n := 0
	for _, m := range g.Children {
		if m.Kind == k {
			n++
		}
	}
	return n
}

// WorldMatrix returns the transform of a child in scene space.
func (g *Group) WorldMatrix(m *Mesh) mgl64.Mat4 {
	return g.Matrix().Mul4(m.Matrix())
}

// Scene is the root of the graph.
type Scene struct {
	Groups []*Group
}

// Add attaches a group to the root.
func (s *Scene) Add(g *Group) { s.Groups = append(s.Groups, g) }
