package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"geoglobe/internal/animation"
	"geoglobe/internal/assets"
	"geoglobe/internal/config"
	"geoglobe/internal/controls"
	"geoglobe/internal/geom"
	"geoglobe/internal/globe"
	"geoglobe/internal/render"
	"geoglobe/internal/scene"
	"geoglobe/internal/tui"
)

var debug bool

func main() {
	configPath := flag.String("config", "geoglobe.yaml", "YAML config file; missing means defaults")
	outlinePath := flag.String("outline", "", "outline pixels (.json, .csv, .wkt); default is the embedded sample")
	dataPath := flag.String("data", "", "magnitude data (.csv, .geojson, .json, .kml); default is the embedded sample")
	headless := flag.Bool("headless", false, "render without a terminal UI and print the last frame")
	frames := flag.Int("frames", 60, "frames to run in headless mode")
	width := flag.Int("width", 80, "headless canvas width in cells")
	height := flag.Int("height", 40, "headless canvas height in cells")
	dumpConfig := flag.String("dump-config", "", "write the effective config to this file and exit")
	flag.Parse()

	if os.Getenv("GEOGLOBE_DEBUG") != "" {
		f, err := tea.LogToFile("geoglobe.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		debug = true
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *outlinePath != "" {
		cfg.Outline = *outlinePath
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}
	if *dumpConfig != "" {
		if err := config.Save(*dumpConfig, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}
	outline, err := loadOutline(cfg.Outline)
	if err != nil {
		log.Fatal(err)
	}
	data, err := loadData(cfg.Data)
	if err != nil {
		log.Fatal(err)
	}
	if debug {
		log.Printf("config %s: %d outline points, %d data points, policy %s", *configPath, len(outline), len(data), cfg.Policy())
		log.Printf("outline extent %+v, data extent %+v", geom.FlatBounds(outline), geom.GeoBounds(data))
	}

	if *headless {
		if err := runHeadless(cfg, outline, data, *width, *height, *frames); err != nil {
			log.Fatal(err)
		}
		return
	}
	m, err := tui.New(cfg, outline, data)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// loadOutline reads the outline file, or the embedded sample when path is
// empty. A file with no usable points leaves the layer empty.
func loadOutline(path string) ([]geom.FlatPoint, error) {
	if path == "" {
		return assets.Outline()
	}
	pts, err := geom.LoadFlatPoints(path)
	if errors.Is(err, geom.ErrNoRecords) {
		log.Printf("outline %s: no points, continuing without an outline", path)
		return nil, nil
	}
	return pts, err
}

func loadData(path string) ([]geom.GeoDataPoint, error) {
	if path == "" {
		return assets.Data()
	}
	pts, err := geom.LoadGeoData(path)
	if errors.Is(err, geom.ErrNoRecords) {
		log.Printf("data %s: no records, continuing without bars", path)
		return nil, nil
	}
	return pts, err
}

func runHeadless(cfg config.Config, outline []geom.FlatPoint, data []geom.GeoDataPoint, w, h, n int) error {
	opts, err := globe.OptionsFromConfig(cfg)
	if err != nil {
		return err
	}
	scale, err := cfg.Scale()
	if err != nil {
		return err
	}
	g, err := globe.Setup(opts, outline, data, scale)
	if err != nil {
		return err
	}
	if debug {
		log.Printf("points %+v bars %+v", g.PointStats, g.BarStats)
		if g.PointCloud != nil {
			log.Printf("point cloud: %d vertices, %d triangles", g.PointCloud.Geometry.VertexCount(), g.PointCloud.Geometry.TriangleCount())
		}
		lo, hi := scale.Domain()
		log.Printf("color domain %g..%g", lo, hi)
	}

	canvas := render.NewCanvas(w, h)
	r := render.New(canvas)
	c := cfg.Camera
	cam := scene.NewPerspectiveCamera(c.Fov, canvas.Aspect(), c.Near, c.Far, c.Distance)
	orbit := controls.NewOrbit(cam, controls.OptionsFromConfig(c))
	rot := animation.NewRotationState(cfg.Animation.Rotating)
	d := animation.NewDriver(g.Group, g.Scene, cam, r, orbit, rot, cfg.Animation.RotationStep)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ticker := time.NewTicker(time.Second / time.Duration(max(cfg.Animation.FPS, 1)))
	defer ticker.Stop()

	// Run ticks once up front, so n frames need n-1 signals
	frames := make(chan time.Time)
	go func() {
		defer close(frames)
		for i := 1; i < n; i++ {
			select {
			case t := <-ticker.C:
				select {
				case frames <- t:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	if err := d.Run(ctx, frames); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println(r.String())
	if debug {
		log.Printf("headless: %d frames, rotated %.3f rad", d.Frames(), d.Angle())
	}
	return nil
}
