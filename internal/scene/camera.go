package scene

import "github.com/go-gl/mathgl/mgl64"

// Camera is a perspective camera looking at Target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	Fov      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
}

// NewPerspectiveCamera places a camera at (0, 0, distance) looking at the origin.
func NewPerspectiveCamera(fov, aspect, near, far, distance float64) *Camera {
	return &Camera{
		Position: mgl64.Vec3{0, 0, distance},
		Target:   Origin,
		Up:       Up,
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
}

// SetAspect updates the width/height ratio; non-positive values are ignored.
func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// ViewProjection is Projection * View.
func (c *Camera) ViewProjection() mgl64.Mat4 {
	return c.Projection().Mul4(c.View())
}
