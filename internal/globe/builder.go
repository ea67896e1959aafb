package globe

import (
	"math"

	"geoglobe/internal/colorscale"
	"geoglobe/internal/geom"
	"geoglobe/internal/projection"
	"geoglobe/internal/scene"
)

// Stats counts what a build kept and dropped.
type Stats struct {
	Accepted int
	Dropped  int
}

// BarHeight is the depth scale of a bar: value/scaleFactor, never below
// minHeight so that near-zero values stay visible.
func BarHeight(value, scaleFactor, minHeight float64) float64 {
	h := value / scaleFactor
	if math.IsNaN(h) || h < minHeight {
		return minHeight
	}
	return h
}

// Builder turns datasets into meshes.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder { return &Builder{opts: opts} }

// BuildPointCloud places a small sphere at every valid outline point and
// merges them into one mesh. It returns nil when nothing survives projection.
func (b *Builder) BuildPointCloud(points []geom.FlatPoint) (*scene.Mesh, Stats) {
	var st Stats
	geoms := make([]*scene.Geometry, 0, len(points))
	for _, p := range points {
		pos := projection.FlatToSphere(p.X, p.Y, b.opts.MapWidth, b.opts.MapHeight, b.opts.Radius)
		if !pos.Valid(b.opts.Policy) {
			st.Dropped++
			continue
		}
		g := scene.NewSphereGeometry(b.opts.PointRadius, b.opts.PointSegments, b.opts.PointSegments)
		geoms = append(geoms, g.Translate(pos.DX, pos.DY, pos.DZ))
		st.Accepted++
	}
	merged := scene.MergeGeometries(geoms)
	if merged == nil {
		return nil, st
	}
	return scene.NewMesh(scene.KindPointCloud, merged, scene.NewBasicMaterial(b.opts.PointColor)), st
}

// BuildBars makes one box per valid data point. Each box has one face on the
// sphere, faces the globe centre and extends outward by BarHeight.
func (b *Builder) BuildBars(data []geom.GeoDataPoint, scale *colorscale.Scale) ([]*scene.Mesh, Stats) {
	var st Stats
	var bars []*scene.Mesh
	for _, d := range data {
		pos := projection.LatLngToSphere(d.Lat, d.Lng, b.opts.Radius)
		if !pos.Valid(b.opts.Policy) {
			st.Dropped++
			continue
		}
		g := scene.NewBoxGeometry(b.opts.BarWidth, b.opts.BarWidth, 1).Translate(0, 0, -0.5)
		m := scene.NewMesh(scene.KindBar, g, scene.NewBasicMaterial(scale.ColorFor(d.Value)))
		m.Value = d.Value
		m.Position = pos.Vec3()
		m.LookAt(scene.Origin)
		m.Scale[2] = BarHeight(d.Value, b.opts.BarScaleFactor, b.opts.BarMinHeight)
		bars = append(bars, m)
		st.Accepted++
	}
	return bars, st
}

// BuildEarth is the translucent globe sphere.
func (b *Builder) BuildEarth() *scene.Mesh {
	mat := scene.Material{
		Color:       b.opts.GlobeColor,
		Opacity:     b.opts.GlobeOpacity,
		Transparent: b.opts.GlobeOpacity < 1,
	}
	g := scene.NewSphereGeometry(b.opts.Radius, b.opts.GlobeSegments, b.opts.GlobeSegments)
	return scene.NewMesh(scene.KindEarth, g, mat)
}
