// Package config holds the tunables of the globe and reads them from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"geoglobe/internal/colorscale"
	"geoglobe/internal/projection"
)

// Globe sizes the sphere and the reference map image.
type Globe struct {
	Radius    float64 `yaml:"radius"`
	Segments  int     `yaml:"segments"`
	Opacity   float64 `yaml:"opacity"`
	Color     string  `yaml:"color"`
	MapWidth  float64 `yaml:"map_width"`
	MapHeight float64 `yaml:"map_height"`
}

// Points styles the outline point cloud.
type Points struct {
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`
	Color    string  `yaml:"color"`
}

// Bars sizes the magnitude bars.
type Bars struct {
	Width       float64 `yaml:"width"`
	ScaleFactor float64 `yaml:"scale_factor"`
	MinHeight   float64 `yaml:"min_height"`
}

// ColorStop is one row of the color table.
type ColorStop struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

type Camera struct {
	Fov         float64 `yaml:"fov"`
	Near        float64 `yaml:"near"`
	Far         float64 `yaml:"far"`
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Damping     float64 `yaml:"damping"`
}

type Animation struct {
	FPS          int     `yaml:"fps"`
	RotationStep float64 `yaml:"rotation_step"`
	Rotating     bool    `yaml:"rotating"`
}

type Projection struct {
	// Policy is "zero-axis" (drop any exactly-zero axis) or "finite".
	Policy string `yaml:"policy"`
}

// Config is the whole file. Datasets default to the embedded samples when empty.
type Config struct {
	Globe      Globe       `yaml:"globe"`
	Points     Points      `yaml:"points"`
	Bars       Bars        `yaml:"bars"`
	Colors     []ColorStop `yaml:"colors"`
	Camera     Camera      `yaml:"camera"`
	Animation  Animation   `yaml:"animation"`
	Projection Projection  `yaml:"projection"`
	Outline    string      `yaml:"outline"`
	Data       string      `yaml:"data"`
}

// Default returns the reference configuration.
func Default() Config {
	c := Config{
		Globe: Globe{
			Radius:    100,
			Segments:  64,
			Opacity:   0.5,
			Color:     "#000000",
			MapWidth:  4098,
			MapHeight: 1968,
		},
		Points: Points{Radius: 0.4, Segments: 5, Color: "#f5f5f5"},
		Bars:   Bars{Width: 2, ScaleFactor: 60000, MinHeight: 0.1},
		Camera: Camera{
			Fov:         45,
			Near:        1,
			Far:         4000,
			Distance:    400,
			MinDistance: 150,
			MaxDistance: 1000,
			Damping:     0.25,
		},
		Animation:  Animation{FPS: 30, RotationStep: 0.004, Rotating: true},
		Projection: Projection{Policy: "zero-axis"},
	}
	for i, at := range colorscale.DefaultBreakpoints {
		c.Colors = append(c.Colors, ColorStop{At: at, Color: colorscale.DefaultColors[i]})
	}
	return c
}

// Load reads a YAML file over Default(). An empty path or a missing file
// yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Validate checks the values that would break setup or the frame loop.
func (c Config) Validate() error {
	switch {
	case c.Globe.Radius <= 1:
		return fmt.Errorf("globe.radius must exceed 1, got %v", c.Globe.Radius)
	case c.Globe.MapWidth <= 0 || c.Globe.MapHeight <= 0:
		return fmt.Errorf("globe map size must be positive, got %vx%v", c.Globe.MapWidth, c.Globe.MapHeight)
	case c.Bars.ScaleFactor <= 0:
		return fmt.Errorf("bars.scale_factor must be positive, got %v", c.Bars.ScaleFactor)
	case c.Animation.FPS <= 0:
		return fmt.Errorf("animation.fps must be positive, got %d", c.Animation.FPS)
	case c.Camera.MinDistance > c.Camera.MaxDistance:
		return fmt.Errorf("camera.min_distance %v exceeds max_distance %v", c.Camera.MinDistance, c.Camera.MaxDistance)
	}
	if _, ok := projection.ParsePolicy(c.Projection.Policy); !ok {
		return fmt.Errorf("projection.policy %q unknown", c.Projection.Policy)
	}
	if _, err := c.Scale(); err != nil {
		return err
	}
	return nil
}

// Scale builds the color table.
func (c Config) Scale() (*colorscale.Scale, error) {
	bps := make([]float64, len(c.Colors))
	hexes := make([]string, len(c.Colors))
	for i, s := range c.Colors {
		bps[i], hexes[i] = s.At, s.Color
	}
	return colorscale.FromHex(bps, hexes)
}

// Policy returns the projection validity policy, defaulting to zero-axis.
func (c Config) Policy() projection.Policy {
	p, _ := projection.ParsePolicy(c.Projection.Policy)
	return p
}

// Save writes c as YAML.
func Save(path string, c Config) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
