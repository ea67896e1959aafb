// Package globe builds the meshes of the visualization and composes them
// under a single rotating group.
package globe

import (
	"fmt"

	"geoglobe/internal/colorscale"
	"geoglobe/internal/geom"
	"geoglobe/internal/scene"
)

// Globe owns the scene and every mesh in it. Meshes are created once by
// Setup and live as long as the Globe.
type Globe struct {
	Scene      *scene.Scene
	Group      *scene.Group
	Earth      *scene.Mesh
	PointCloud *scene.Mesh // nil when no outline point survived
	Bars       []*scene.Mesh

	PointStats Stats
	BarStats   Stats
}

// Setup builds the earth, the outline point cloud and the bars and adds them
// to one group, which is the only child of the scene root.
func Setup(opts Options, outline []geom.FlatPoint, data []geom.GeoDataPoint, scale *colorscale.Scale) (*Globe, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if scale == nil {
		scale = colorscale.Default()
	}
	b := NewBuilder(opts)
	g := &Globe{
		Scene: &scene.Scene{},
		Group: scene.NewGroup(),
	}
	g.Scene.Add(g.Group)

	g.Earth = b.BuildEarth()
	g.Group.Add(g.Earth)

	g.PointCloud, g.PointStats = b.BuildPointCloud(outline)
	g.Group.Add(g.PointCloud)

	g.Bars, g.BarStats = b.BuildBars(data, scale)
	g.Group.Add(g.Bars...)
	return g, nil
}

// Validate checks the composition: one earth, at most one point cloud, any
// number of bars, and nothing else.
func (g *Globe) Validate() error {
	if n := len(g.Scene.Groups); n != 1 || g.Scene.Groups[0] != g.Group {
		return fmt.Errorf("globe: scene root has %d groups", n)
	}
	earth, points, bars := g.Group.Count(scene.KindEarth), g.Group.Count(scene.KindPointCloud), g.Group.Count(scene.KindBar)
	switch {
	case earth != 1:
		return fmt.Errorf("globe: %d earth meshes", earth)
	case points > 1:
		return fmt.Errorf("globe: %d point clouds", points)
	case earth+points+bars != len(g.Group.Children):
		return fmt.Errorf("globe: %d unexpected meshes", len(g.Group.Children)-earth-points-bars)
	}
	return nil
}
