// Package controls moves the camera around a fixed target in response to
// drag, wheel and key input.
package controls

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"geoglobe/internal/config"
	"geoglobe/internal/scene"
)

const polarEps = 1e-6

type Options struct {
	MinDistance float64
	MaxDistance float64
	// Damping is the share of pending rotation applied per Update, in (0, 1].
	Damping float64
}

func OptionsFromConfig(c config.Camera) Options {
	return Options{MinDistance: c.MinDistance, MaxDistance: c.MaxDistance, Damping: c.Damping}
}

// Orbit keeps the camera on a sphere around its target. Input accumulates
// as pending deltas; Update eases them into the camera.
type Orbit struct {
	cam  *scene.Camera
	opts Options

	azimuth  float64
	polar    float64
	distance float64

	dAzimuth float64
	dPolar   float64
	zoom     float64

	home mgl64.Vec3
}

// NewOrbit starts from the camera's current position.
func NewOrbit(cam *scene.Camera, opts Options) *Orbit {
	if opts.Damping <= 0 || opts.Damping > 1 {
		opts.Damping = 1
	}
	o := &Orbit{cam: cam, opts: opts, zoom: 1, home: cam.Position}
	o.fromCamera()
	o.apply()
	return o
}

func (o *Orbit) fromCamera() {
	off := o.cam.Position.Sub(o.cam.Target)
	o.distance = off.Len()
	if o.distance == 0 {
		o.azimuth, o.polar = 0, math.Pi/2
		return
	}
	o.azimuth = math.Atan2(off[0], off[2])
	o.polar = math.Acos(mgl64.Clamp(off[1]/o.distance, -1, 1))
}

// Rotate queues a change of azimuth (around the up axis) and polar angle,
// both in radians.
func (o *Orbit) Rotate(dAzimuth, dPolar float64) {
	o.dAzimuth += dAzimuth
	o.dPolar += dPolar
}

// Zoom scales the distance to the target. Factors below 1 move closer.
func (o *Orbit) Zoom(factor float64) {
	if factor > 0 {
		o.zoom *= factor
	}
}

func (o *Orbit) Update() {
	k := o.opts.Damping
	o.azimuth += o.dAzimuth * k
	o.polar += o.dPolar * k
	o.dAzimuth *= 1 - k
	o.dPolar *= 1 - k
	if math.Abs(o.dAzimuth) < 1e-9 {
		o.dAzimuth = 0
	}
	if math.Abs(o.dPolar) < 1e-9 {
		o.dPolar = 0
	}
	o.distance *= o.zoom
	o.zoom = 1
	o.apply()
}

// Reset returns the camera to where it was when the Orbit was created.
func (o *Orbit) Reset() {
	o.dAzimuth, o.dPolar, o.zoom = 0, 0, 1
	o.cam.Position = o.home
	o.fromCamera()
	o.apply()
}

func (o *Orbit) apply() {
	o.polar = mgl64.Clamp(o.polar, polarEps, math.Pi-polarEps)
	if o.opts.MaxDistance > 0 {
		o.distance = mgl64.Clamp(o.distance, o.opts.MinDistance, o.opts.MaxDistance)
	}
	s := math.Sin(o.polar)
	off := mgl64.Vec3{
		o.distance * s * math.Sin(o.azimuth),
		o.distance * math.Cos(o.polar),
		o.distance * s * math.Cos(o.azimuth),
	}
	o.cam.Position = o.cam.Target.Add(off)
}

func (o *Orbit) Azimuth() float64  { return o.azimuth }
func (o *Orbit) Polar() float64    { return o.polar }
func (o *Orbit) Distance() float64 { return o.distance }
