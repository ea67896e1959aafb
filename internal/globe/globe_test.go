package globe

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"geoglobe/internal/colorscale"
	"geoglobe/internal/config"
	"geoglobe/internal/geom"
	"geoglobe/internal/projection"
	"geoglobe/internal/scene"
)

func TestBarHeight(t *testing.T) {
	tests := []struct {
		value, want float64
	}{
		{0, 0.1},
		{6000000, 100},
		{60000, 1},
		{3000, 0.1},
		{-5, 0.1},
		{math.NaN(), 0.1},
	}
	for _, tc := range tests {
		if got := BarHeight(tc.value, 60000, 0.1); got != tc.want {
			t.Errorf("BarHeight(%v) = %v want %v", tc.value, got, tc.want)
		}
	}
}

func TestBuildPointCloud_ZeroAxisPointYieldsNothing(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	// the map centre projects to (r, 0, 0)
	m, st := b.BuildPointCloud([]geom.FlatPoint{{X: 2049, Y: 984}})
	if m != nil {
		t.Fatalf("expected no mesh, got %d vertices", m.Geometry.VertexCount())
	}
	if st.Accepted != 0 || st.Dropped != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestBuildPointCloud_Empty(t *testing.T) {
	b := NewBuilder(DefaultOptions())
	if m, st := b.BuildPointCloud(nil); m != nil || st != (Stats{}) {
		t.Fatalf("nil input: %v %+v", m, st)
	}
}

func TestBuildPointCloud_Merges(t *testing.T) {
	opts := DefaultOptions()
	b := NewBuilder(opts)
	pts := []geom.FlatPoint{{X: 1000, Y: 500}, {X: 2049, Y: 984}, {X: 3000, Y: 1500}}
	m, st := b.BuildPointCloud(pts)
	if m == nil {
		t.Fatal("no mesh")
	}
	if st.Accepted != 2 || st.Dropped != 1 {
		t.Fatalf("stats = %+v", st)
	}
	per := scene.NewSphereGeometry(opts.PointRadius, opts.PointSegments, opts.PointSegments)
	if got, want := m.Geometry.VertexCount(), 2*per.VertexCount(); got != want {
		t.Fatalf("vertices = %d want %d", got, want)
	}
	if m.Kind != scene.KindPointCloud || m.Material.Color.Hex() != "#f5f5f5" {
		t.Fatalf("mesh = %v %s", m.Kind, m.Material.Color.Hex())
	}
	// every vertex sits within one point radius of the globe surface
	for _, p := range m.Geometry.Positions {
		if d := math.Abs(p.Len() - opts.Radius); d > opts.PointRadius+1e-9 {
			t.Fatalf("vertex %v is %v from the surface", p, d)
		}
	}
}

func TestBuildBars_EndToEnd(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = projection.FiniteOnly
	bars, st := NewBuilder(opts).BuildBars([]geom.GeoDataPoint{{Lat: 0, Lng: 0, Value: 60000}}, colorscale.Default())
	if len(bars) != 1 || st.Accepted != 1 {
		t.Fatalf("bars = %d stats = %+v", len(bars), st)
	}
	bar := bars[0]
	want := projection.LatLngToSphere(0, 0, 100).Vec3()
	if !bar.Position.ApproxEqualThreshold(want, 1e-12) || math.Abs(bar.Position[0]-99) > 1e-12 {
		t.Fatalf("position = %v want %v", bar.Position, want)
	}
	if bar.Scale[2] != 1 || bar.Scale[0] != 1 || bar.Scale[1] != 1 {
		t.Fatalf("scale = %v", bar.Scale)
	}
	toCentre := bar.Position.Mul(-1).Normalize()
	if f := bar.Forward(); !f.ApproxEqualThreshold(toCentre, 1e-3) {
		t.Fatalf("forward = %v want %v", f, toCentre)
	}
	if bar.Material.Color.Hex() != colorscale.Default().Hex(60000) {
		t.Fatalf("color = %s", bar.Material.Color.Hex())
	}
}

func TestBuildBars_EquatorDroppedByDefault(t *testing.T) {
	bars, st := NewBuilder(DefaultOptions()).BuildBars([]geom.GeoDataPoint{{Lat: 0, Lng: 0, Value: 60000}}, colorscale.Default())
	if len(bars) != 0 || st.Dropped != 1 {
		t.Fatalf("bars = %d stats = %+v", len(bars), st)
	}
}

func TestBuildBars_ExtendOutward(t *testing.T) {
	opts := DefaultOptions()
	data := []geom.GeoDataPoint{{Lat: 35.68, Lng: 139.69, Value: 6000000}, {Lat: -33.9, Lng: 151.2, Value: 0}}
	bars, _ := NewBuilder(opts).BuildBars(data, colorscale.Default())
	if len(bars) != 2 {
		t.Fatalf("bars = %d", len(bars))
	}
	for i, want := range []float64{100, 0.1} {
		bar := bars[i]
		if bar.Scale[2] != want {
			t.Fatalf("bar %d height = %v want %v", i, bar.Scale[2], want)
		}
		// the base face touches the projected point, the far face is height further out
		base := mgl64.TransformCoordinate(mgl64.Vec3{0, 0, 0}, bar.Matrix())
		top := mgl64.TransformCoordinate(mgl64.Vec3{0, 0, -1}, bar.Matrix())
		if math.Abs(base.Len()-(opts.Radius-1)) > 1e-6 {
			t.Fatalf("bar %d base at %v", i, base.Len())
		}
		if math.Abs(top.Len()-(opts.Radius-1+want)) > 1e-6 {
			t.Fatalf("bar %d top at %v want %v", i, top.Len(), opts.Radius-1+want)
		}
	}
}

func TestBuildBars_Empty(t *testing.T) {
	bars, st := NewBuilder(DefaultOptions()).BuildBars(nil, colorscale.Default())
	if bars != nil || st != (Stats{}) {
		t.Fatalf("bars = %v stats = %+v", bars, st)
	}
}

func TestSetup_Composition(t *testing.T) {
	outline := []geom.FlatPoint{{X: 1000, Y: 500}, {X: 3000, Y: 1500}}
	data := []geom.GeoDataPoint{{Lat: 10, Lng: 20, Value: 1000}, {Lat: 0, Lng: 0, Value: 5}, {Lat: -40, Lng: -70, Value: 500000}}
	g, err := Setup(DefaultOptions(), outline, data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if len(g.Scene.Groups) != 1 || g.Scene.Groups[0] != g.Group {
		t.Fatal("group is not the sole root child")
	}
	if g.Group.Count(scene.KindEarth) != 1 || g.Group.Count(scene.KindPointCloud) != 1 || g.Group.Count(scene.KindBar) != 2 {
		t.Fatalf("children: %d", len(g.Group.Children))
	}
	if g.BarStats.Dropped != 1 {
		t.Fatalf("bar stats = %+v", g.BarStats)
	}
	if !g.Earth.Material.Transparent || g.Earth.Material.Opacity != 0.5 {
		t.Fatalf("earth material = %+v", g.Earth.Material)
	}
}

func TestSetup_NoData(t *testing.T) {
	g, err := Setup(DefaultOptions(), nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
	if g.PointCloud != nil || len(g.Bars) != 0 || len(g.Group.Children) != 1 {
		t.Fatalf("expected the earth alone, got %d children", len(g.Group.Children))
	}
}

func TestSetup_InvalidOptions(t *testing.T) {
	for _, mut := range []func(*Options){
		func(o *Options) { o.Radius = 1 },
		func(o *Options) { o.MapWidth = 0 },
		func(o *Options) { o.BarScaleFactor = 0 },
	} {
		o := DefaultOptions()
		mut(&o)
		if _, err := Setup(o, nil, nil, nil); err == nil {
			t.Errorf("options %+v accepted", o)
		}
	}
}

func TestValidate_RejectsExtraEarth(t *testing.T) {
	g, err := Setup(DefaultOptions(), nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	g.Group.Add(NewBuilder(DefaultOptions()).BuildEarth())
	if err := g.Validate(); err == nil {
		t.Fatal("two earths accepted")
	}
}

func TestOptionsFromConfig(t *testing.T) {
	c := config.Default()
	c.Projection.Policy = "finite"
	c.Globe.Radius = 50
	o, err := OptionsFromConfig(c)
	if err != nil {
		t.Fatal(err)
	}
	if o.Radius != 50 || o.Policy != projection.FiniteOnly {
		t.Fatalf("options = radius %v policy %v", o.Radius, o.Policy)
	}
	if got := o.PointColor.Hex(); got != "#f5f5f5" {
		t.Fatalf("point color = %s", got)
	}

	c = config.Default()
	c.Points.Color = "white"
	if _, err := OptionsFromConfig(c); err == nil {
		t.Fatal("expected error for a non-hex color")
	}
	c = config.Default()
	c.Globe.Radius = 1
	if _, err := OptionsFromConfig(c); err == nil {
		t.Fatal("expected error for radius 1")
	}
}
