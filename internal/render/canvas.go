package render

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// braille dot bits indexed by [column][row] inside a 2x4 cell
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Canvas is a grid of braille cells, each holding 2x4 micro-pixels. Every
// micro-pixel carries a depth; every cell takes the color of its nearest lit
// pixel.
type Canvas struct {
	w, h int // in cells
	mask []uint8

	depth []float64 // per micro-pixel, smaller is nearer

	// nearest translucent surface per micro-pixel
	veilZ     []float64
	veilColor []colorful.Color
	veilAlpha []float64

	cellZ     []float64
	cellColor []colorful.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

// Resize reallocates the buffers when the size changes and clears them.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if w != c.w || h != c.h || c.mask == nil {
		c.w, c.h = w, h
		cells, micro := w*h, w*h*8
		c.mask = make([]uint8, cells)
		c.cellZ = make([]float64, cells)
		c.cellColor = make([]colorful.Color, cells)
		c.depth = make([]float64, micro)
		c.veilZ = make([]float64, micro)
		c.veilColor = make([]colorful.Color, micro)
		c.veilAlpha = make([]float64, micro)
	}
	c.Clear()
}

func (c *Canvas) Clear() {
	clear(c.mask)
	clear(c.cellColor)
	clear(c.veilAlpha)
	inf := math.Inf(1)
	for i := range c.depth {
		c.depth[i] = inf
		c.veilZ[i] = inf
	}
	for i := range c.cellZ {
		c.cellZ[i] = inf
	}
}

// Size is the canvas size in cells.
func (c *Canvas) Size() (w, h int) { return c.w, c.h }

// MicroSize is the canvas size in micro-pixels.
func (c *Canvas) MicroSize() (w, h int) { return c.w * 2, c.h * 4 }

// Aspect is the micro-pixel width/height ratio, the aspect a camera
// rendering into this canvas should use. An empty canvas reports 1.
func (c *Canvas) Aspect() float64 {
	if c.w == 0 || c.h == 0 {
		return 1
	}
	return float64(c.w*2) / float64(c.h*4)
}

func (c *Canvas) index(mx, my int) (int, bool) {
	if mx < 0 || my < 0 || mx >= c.w*2 || my >= c.h*4 {
		return 0, false
	}
	return my*c.w*2 + mx, true
}

// Plot lights a micro-pixel if z is nearer than what is already there. A
// translucent surface in front of the pixel tints its color.
func (c *Canvas) Plot(mx, my int, z float64, col colorful.Color) bool {
	i, ok := c.index(mx, my)
	if !ok || math.IsNaN(z) || z >= c.depth[i] {
		return false
	}
	c.depth[i] = z
	if c.veilZ[i] < z {
		col = col.BlendRgb(c.veilColor[i], c.veilAlpha[i]).Clamped()
	}
	cell := (my/4)*c.w + mx/2
	c.mask[cell] |= dotBits[mx%2][my%4]
	if z < c.cellZ[cell] {
		c.cellZ[cell] = z
		c.cellColor[cell] = col
	}
	return true
}

// Veil records a translucent surface at a micro-pixel. It lights nothing.
func (c *Canvas) Veil(mx, my int, z float64, col colorful.Color, alpha float64) {
	i, ok := c.index(mx, my)
	if !ok || math.IsNaN(z) || z >= c.veilZ[i] {
		return
	}
	c.veilZ[i] = z
	c.veilColor[i] = col
	c.veilAlpha[i] = alpha
}

// Line draws from (x0,y0,z0) to (x1,y1,z1) with Bresenham, interpolating depth.
func (c *Canvas) Line(x0, y0 int, z0 float64, x1, y1 int, z1 float64, col colorful.Color) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	steps := max(dx, -dy)
	err := dx + dy
	for i := 0; ; i++ {
		z := z0
		if steps > 0 {
			z += (z1 - z0) * float64(i) / float64(steps)
		}
		c.Plot(x0, y0, z, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Cell returns the glyph and color of a cell. ok is false for empty or
// out-of-range cells.
func (c *Canvas) Cell(cx, cy int) (r rune, col colorful.Color, ok bool) {
	if cx < 0 || cy < 0 || cx >= c.w || cy >= c.h {
		return ' ', colorful.Color{}, false
	}
	i := cy*c.w + cx
	if c.mask[i] == 0 {
		return ' ', colorful.Color{}, false
	}
	return rune(0x2800 + int(c.mask[i])), c.cellColor[i], true
}

// Text returns the canvas as uncolored lines.
func (c *Canvas) Text() []string {
	out := make([]string, c.h)
	row := make([]rune, c.w)
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			row[x], _, _ = c.Cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// Lit counts cells with at least one lit micro-pixel.
func (c *Canvas) Lit() int {
	n := 0
	for _, m := range c.mask {
		if m != 0 {
			n++
		}
	}
	return n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
