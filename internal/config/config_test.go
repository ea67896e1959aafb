package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"geoglobe/internal/projection"
)

func TestDefault_Valid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Bars.ScaleFactor != 60000 || c.Bars.MinHeight != 0.1 || c.Animation.RotationStep != 0.004 {
		t.Fatalf("reference values changed: %+v %+v", c.Bars, c.Animation)
	}
	if len(c.Colors) != 8 || c.Colors[6].At != c.Colors[7].At {
		t.Fatalf("colors = %+v", c.Colors)
	}
	if c.Policy() != projection.ZeroAxisInvalid {
		t.Fatalf("policy = %v", c.Policy())
	}
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if c.Globe.Radius != 100 {
		t.Fatalf("radius = %v", c.Globe.Radius)
	}
	if c, err := Load(""); err != nil || c.Camera.Distance != 400 {
		t.Fatalf("empty path: %+v %v", c.Camera, err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	p := filepath.Join(t.TempDir(), "globe.yaml")
	body := `
globe:
  radius: 50
bars:
  scale_factor: 1000
colors:
  - {at: 0, color: "#000000"}
  - {at: 10, color: "#ffffff"}
projection:
  policy: finite
data: cities.csv
`
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if c.Globe.Radius != 50 || c.Bars.ScaleFactor != 1000 || c.Data != "cities.csv" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	// untouched fields keep their defaults
	if c.Globe.Segments != 64 || c.Bars.MinHeight != 0.1 {
		t.Fatalf("defaults lost: %+v %+v", c.Globe, c.Bars)
	}
	if len(c.Colors) != 2 {
		t.Fatalf("colors = %+v", c.Colors)
	}
	if c.Policy() != projection.FiniteOnly {
		t.Fatalf("policy = %v", c.Policy())
	}
	s, err := c.Scale()
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Hex(20); got != "#ffffff" {
		t.Fatalf("scale top = %s", got)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":     "globe: [",
		"radius":     "globe: {radius: 1}",
		"scale":      "bars: {scale_factor: 0}",
		"policy":     "projection: {policy: sloppy}",
		"decreasing": "colors: [{at: 5, color: '#000'}, {at: 1, color: '#fff'}]",
		"distance":   "camera: {min_distance: 900, max_distance: 100}",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
				t.Fatal(err)
			}
			c, err := Load(p)
			if err == nil || !strings.HasPrefix(err.Error(), "config: ") {
				t.Fatalf("err = %v", err)
			}
			if c.Globe.Radius != 100 {
				t.Fatalf("failed load should return defaults, got %+v", c.Globe)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")
	want := Default()
	want.Outline = "outline.json"
	if err := Save(p, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if got.Outline != want.Outline || got.Camera != want.Camera || len(got.Colors) != len(want.Colors) {
		t.Fatalf("round trip: %+v", got)
	}
}
