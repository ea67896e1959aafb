// Package render rasterizes a scene into a braille Canvas. Opaque meshes are
// filled and outlined with depth testing; translucent meshes only tint what
// lies behind them.
package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	colorful "github.com/lucasb-eyer/go-colorful"

	"geoglobe/internal/scene"
)

type Renderer struct {
	canvas *Canvas
	styles map[string]lipgloss.Style

	// scratch buffer of projected vertices, reused across meshes
	verts []vertex
}

type vertex struct {
	x, y, z float64
	ok      bool
}

func New(c *Canvas) *Renderer {
	return &Renderer{canvas: c, styles: map[string]lipgloss.Style{}}
}

func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Render clears the canvas and draws every mesh of every group. Translucent
// meshes go first so that opaque pixels behind them get tinted.
func (r *Renderer) Render(s *scene.Scene, cam *scene.Camera) {
	r.canvas.Clear()
	if s == nil || cam == nil || r.canvas.w == 0 || r.canvas.h == 0 {
		return
	}
	vp := cam.ViewProjection()
	for _, translucent := range []bool{true, false} {
		for _, g := range s.Groups {
			for _, m := range g.Children {
				if m.Geometry.IsEmpty() || m.Material.Transparent != translucent {
					continue
				}
				r.drawMesh(vp.Mul4(g.WorldMatrix(m)), m)
			}
		}
	}
}

func (r *Renderer) project(mvp mgl64.Mat4, g *scene.Geometry) []vertex {
	mw, mh := r.canvas.MicroSize()
	r.verts = r.verts[:0]
	for _, p := range g.Positions {
		clip := mvp.Mul4x1(p.Vec4(1))
		if clip[3] <= 0 {
			r.verts = append(r.verts, vertex{})
			continue
		}
		nx, ny, nz := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
		r.verts = append(r.verts, vertex{
			x:  (nx + 1) / 2 * float64(mw),
			y:  (1 - ny) / 2 * float64(mh),
			z:  nz,
			ok: nz >= -1 && nz <= 1,
		})
	}
	return r.verts
}

func (r *Renderer) drawMesh(mvp mgl64.Mat4, m *scene.Mesh) {
	verts := r.project(mvp, m.Geometry)
	idx := m.Geometry.Indices
	for i := 0; i+2 < len(idx); i += 3 {
		a, b, c := verts[idx[i]], verts[idx[i+1]], verts[idx[i+2]]
		if !a.ok || !b.ok || !c.ok {
			continue
		}
		if m.Material.Transparent {
			r.fill(a, b, c, func(x, y int, z float64) {
				r.canvas.Veil(x, y, z, m.Material.Color, m.Material.Opacity)
			})
			continue
		}
		col := m.Material.Color
		r.fill(a, b, c, func(x, y int, z float64) { r.canvas.Plot(x, y, z, col) })
		// thin and sub-pixel triangles may cover no pixel centre
		r.edge(a, b, col)
		r.edge(b, c, col)
		r.edge(c, a, col)
	}
}

func (r *Renderer) edge(a, b vertex, col colorful.Color) {
	r.canvas.Line(int(math.Floor(a.x)), int(math.Floor(a.y)), a.z, int(math.Floor(b.x)), int(math.Floor(b.y)), b.z, col)
}

// fill samples pixel centres inside the triangle and interpolates depth.
func (r *Renderer) fill(a, b, c vertex, plot func(x, y int, z float64)) {
	area := edgeFn(a, b, c.x, c.y)
	if area == 0 {
		return
	}
	mw, mh := r.canvas.MicroSize()
	x0 := max(int(math.Floor(min(a.x, b.x, c.x))), 0)
	x1 := min(int(math.Ceil(max(a.x, b.x, c.x))), mw-1)
	y0 := max(int(math.Floor(min(a.y, b.y, c.y))), 0)
	y1 := min(int(math.Ceil(max(a.y, b.y, c.y))), mh-1)
	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			w0 := edgeFn(b, c, px, py) / area
			w1 := edgeFn(c, a, px, py) / area
			w2 := edgeFn(a, b, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			plot(x, y, w0*a.z+w1*b.z+w2*c.z)
		}
	}
}

func edgeFn(a, b vertex, px, py float64) float64 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// Lines returns the canvas rows with each run of same-colored cells wrapped
// in a lipgloss foreground style.
func (r *Renderer) Lines() []string {
	c := r.canvas
	out := make([]string, c.h)
	var sb, run strings.Builder
	for y := 0; y < c.h; y++ {
		sb.Reset()
		run.Reset()
		runHex := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runHex == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(r.style(runHex).Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			ch, col, ok := c.Cell(x, y)
			hex := ""
			if ok {
				hex = col.Hex()
			}
			if hex != runHex {
				flush()
				runHex = hex
			}
			run.WriteRune(ch)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

func (r *Renderer) String() string { return strings.Join(r.Lines(), "\n") }

func (r *Renderer) style(hex string) lipgloss.Style {
	st, ok := r.styles[hex]
	if !ok {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		r.styles[hex] = st
	}
	return st
}
