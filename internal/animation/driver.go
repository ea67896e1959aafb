// Package animation advances the globe one frame at a time.
package animation

import (
	"context"
	"sync/atomic"
	"time"

	"geoglobe/internal/scene"
)

// DefaultStep is the rotation applied to the globe group per frame, in radians.
const DefaultStep = 0.004

// Renderer draws a scene as seen from a camera.
type Renderer interface {
	Render(s *scene.Scene, cam *scene.Camera)
}

// Controls is updated once per frame after rendering.
type Controls interface {
	Update()
}

type Driver struct {
	group    *scene.Group
	scene    *scene.Scene
	camera   *scene.Camera
	renderer Renderer
	controls Controls
	rotation *RotationState
	step     float64

	angle   float64
	frames  atomic.Uint64
	running atomic.Bool
}

// NewDriver wires a driver. Controls may be nil. A nil rotation state is
// treated as permanently paused.
func NewDriver(g *scene.Group, s *scene.Scene, cam *scene.Camera, r Renderer, c Controls, rot *RotationState, step float64) *Driver {
	if rot == nil {
		rot = NewRotationState(false)
	}
	return &Driver{
		group:    g,
		scene:    s,
		camera:   cam,
		renderer: r,
		controls: c,
		rotation: rot,
		step:     step,
	}
}

// Tick runs one frame: rotate the group if rotation is on, render, then
// update the controls.
func (d *Driver) Tick() {
	if d.rotation.IsRotating() {
		d.group.RotateY(d.step)
		d.angle += d.step
	}
	d.renderer.Render(d.scene, d.camera)
	if d.controls != nil {
		d.controls.Update()
	}
	d.frames.Add(1)
}

// Run ticks once immediately and then once per value received on frames.
// It returns nil after Stop or when frames is closed, and ctx.Err() when the
// context ends first.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time) error {
	d.running.Store(true)
	defer d.running.Store(false)
	for {
		if !d.running.Load() {
			return nil
		}
		d.Tick()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
		}
	}
}

// Stop makes Run return before its next frame.
func (d *Driver) Stop() { d.running.Store(false) }

func (d *Driver) Running() bool { return d.running.Load() }

// Frames reports how many ticks have run.
func (d *Driver) Frames() uint64 { return d.frames.Load() }

// Angle is the accumulated group rotation in radians.
func (d *Driver) Angle() float64 { return d.angle }

func (d *Driver) Rotation() *RotationState { return d.rotation }
