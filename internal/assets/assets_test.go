package assets

import (
	"testing"

	"geoglobe/internal/globe"
	"geoglobe/internal/projection"
)

func TestOutline(t *testing.T) {
	pts, err := Outline()
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) < 1000 {
		t.Fatalf("outline has %d points", len(pts))
	}
	for _, p := range pts {
		if p.X < 0 || p.X > 4098 || p.Y < 0 || p.Y > 1968 {
			t.Fatalf("point %+v outside the map", p)
		}
	}
}

func TestData(t *testing.T) {
	data, err := Data()
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 51 {
		t.Fatalf("data has %d rows", len(data))
	}
	for _, d := range data {
		if d.Value < 0 || d.Lat < -90 || d.Lat > 90 || d.Lng < -180 || d.Lng > 180 {
			t.Fatalf("bad row %+v", d)
		}
	}
}

func TestSamplesBuildAGlobe(t *testing.T) {
	outline, err := Outline()
	if err != nil {
		t.Fatal(err)
	}
	data, err := Data()
	if err != nil {
		t.Fatal(err)
	}
	g, err := globe.Setup(globe.DefaultOptions(), outline, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	// prime meridian points and the equator station fall on a zero axis
	if g.PointStats.Dropped == 0 || g.PointStats.Accepted+g.PointStats.Dropped != len(outline) {
		t.Fatalf("point stats = %+v", g.PointStats)
	}
	if g.BarStats.Dropped != 1 || len(g.Bars) != len(data)-1 {
		t.Fatalf("bar stats = %+v", g.BarStats)
	}

	opts := globe.DefaultOptions()
	opts.Policy = projection.FiniteOnly
	g, err = globe.Setup(opts, outline, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if g.PointStats.Dropped != 0 || len(g.Bars) != len(data) {
		t.Fatalf("finite policy dropped points: %+v %+v", g.PointStats, g.BarStats)
	}
}
