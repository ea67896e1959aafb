// Package colorscale maps magnitudes to colors through a piecewise-linear
// breakpoint table.
package colorscale

import (
	"errors"
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ErrEmpty      = errors.New("colorscale: no stops")
	ErrDecreasing = errors.New("colorscale: breakpoints decrease")
	ErrMismatch   = errors.New("colorscale: breakpoint and color counts differ")
)

// Stop is one breakpoint of the table.
type Stop struct {
	At    float64
	Color colorful.Color
}

// Scale interpolates between neighbouring stops in RGB space.
type Scale struct {
	stops []Stop
}

// DefaultBreakpoints and DefaultColors form the reference table. The last two
// breakpoints are equal, which leaves the top band zero-width.
var (
	DefaultBreakpoints = []float64{1000, 3000, 10000, 50000, 100000, 500000, 1000000, 1000000}
	DefaultColors      = []string{"#ffdfe0", "#ffc0c0", "#FF0000", "#ee7070", "#c80200", "#900000", "#510000", "#290000"}
)

// Default returns the reference scale.
func Default() *Scale {
	s, err := FromHex(DefaultBreakpoints, DefaultColors)
	if err != nil {
		panic(err)
	}
	return s
}

// New builds a scale from stops whose breakpoints never decrease.
func New(stops []Stop) (*Scale, error) {
	if len(stops) == 0 {
		return nil, ErrEmpty
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].At < stops[i-1].At || math.IsNaN(stops[i].At) {
			return nil, fmt.Errorf("%w: %v after %v", ErrDecreasing, stops[i].At, stops[i-1].At)
		}
	}
	cp := make([]Stop, len(stops))
	copy(cp, stops)
	return &Scale{stops: cp}, nil
}

// FromHex pairs breakpoints with hex colors ("#rrggbb" or "#rgb").
func FromHex(breakpoints []float64, colors []string) (*Scale, error) {
	if len(breakpoints) != len(colors) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrMismatch, len(breakpoints), len(colors))
	}
	stops := make([]Stop, len(colors))
	for i, h := range colors {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("colorscale: color %d %q: %w", i, h, err)
		}
		stops[i] = Stop{At: breakpoints[i], Color: c}
	}
	return New(stops)
}

// ColorFor returns the color for v. Values at or below the first breakpoint,
// and NaN, take the first color; values at or above the last take the last.
func (s *Scale) ColorFor(v float64) colorful.Color {
	first, last := s.stops[0], s.stops[len(s.stops)-1]
	if math.IsNaN(v) || v <= first.At {
		return first.Color
	}
	if v >= last.At {
		return last.Color
	}
	for i := 0; i+1 < len(s.stops); i++ {
		a, b := s.stops[i], s.stops[i+1]
		if v >= a.At && v < b.At {
			t := (v - a.At) / (b.At - a.At)
			return a.Color.BlendRgb(b.Color, t).Clamped()
		}
	}
	return last.Color
}

// Hex is ColorFor formatted as "#rrggbb".
func (s *Scale) Hex(v float64) string { return s.ColorFor(v).Hex() }

// Legend returns a copy of the stops.
func (s *Scale) Legend() []Stop {
	out := make([]Stop, len(s.stops))
	copy(out, s.stops)
	return out
}

// Domain returns the first and last breakpoints.
func (s *Scale) Domain() (lo, hi float64) {
	return s.stops[0].At, s.stops[len(s.stops)-1].At
}
