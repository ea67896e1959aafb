package globe

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"geoglobe/internal/config"
	"geoglobe/internal/projection"
)

// Options are the geometric and visual constants of one globe.
type Options struct {
	Radius         float64
	GlobeSegments  int
	GlobeColor     colorful.Color
	GlobeOpacity   float64
	MapWidth       float64
	MapHeight      float64
	PointRadius    float64
	PointSegments  int
	PointColor     colorful.Color
	BarWidth       float64
	BarScaleFactor float64
	BarMinHeight   float64
	Policy         projection.Policy
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	o, err := OptionsFromConfig(config.Default())
	if err != nil {
		panic(err)
	}
	return o
}

// OptionsFromConfig converts the file form into Options.
func OptionsFromConfig(c config.Config) (Options, error) {
	globeColor, err := colorful.Hex(c.Globe.Color)
	if err != nil {
		return Options{}, fmt.Errorf("globe: globe.color: %w", err)
	}
	pointColor, err := colorful.Hex(c.Points.Color)
	if err != nil {
		return Options{}, fmt.Errorf("globe: points.color: %w", err)
	}
	o := Options{
		Radius:         c.Globe.Radius,
		GlobeSegments:  c.Globe.Segments,
		GlobeColor:     globeColor,
		GlobeOpacity:   c.Globe.Opacity,
		MapWidth:       c.Globe.MapWidth,
		MapHeight:      c.Globe.MapHeight,
		PointRadius:    c.Points.Radius,
		PointSegments:  c.Points.Segments,
		PointColor:     pointColor,
		BarWidth:       c.Bars.Width,
		BarScaleFactor: c.Bars.ScaleFactor,
		BarMinHeight:   c.Bars.MinHeight,
		Policy:         c.Policy(),
	}
	return o, o.validate()
}

func (o Options) validate() error {
	switch {
	case o.Radius <= 1:
		return fmt.Errorf("globe: radius %v must exceed 1", o.Radius)
	case o.MapWidth <= 0 || o.MapHeight <= 0:
		return errors.New("globe: map size must be positive")
	case o.BarScaleFactor <= 0:
		return fmt.Errorf("globe: bar scale factor %v must be positive", o.BarScaleFactor)
	}
	return nil
}
