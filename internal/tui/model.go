package tui

import (
	"fmt"
	"time"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"geoglobe/internal/animation"
	"geoglobe/internal/colorscale"
	"geoglobe/internal/config"
	"geoglobe/internal/controls"
	"geoglobe/internal/geom"
	"geoglobe/internal/globe"
	"geoglobe/internal/render"
	"geoglobe/internal/scene"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool
	showAttrs   bool
	pasteMode   bool

	status string

	// globe inputs, kept to rebuild after a paste
	opts    globe.Options
	scale   *colorscale.Scale
	outline []geom.FlatPoint
	data    []geom.GeoDataPoint

	globe    *globe.Globe
	camera   *scene.Camera
	renderer *render.Renderer
	orbit    *controls.Orbit
	rotation *animation.RotationState
	driver   *animation.Driver
	step     float64
	frame    time.Duration

	// mouse drag on the canvas
	dragging     bool
	dragX, dragY int

	// legend sidebar
	l list.Model
	// bar attributes table
	tbl table.Model
	// paste box for replacement magnitude data
	ta textarea.Model

	keys keyMap
	help help.Model
}

type frameMsg time.Time

// New builds the globe from cfg and the two datasets and wires the frame
// driver, renderer and orbit controls around it.
func New(cfg config.Config, outline []geom.FlatPoint, data []geom.GeoDataPoint) (Model, error) {
	opts, err := globe.OptionsFromConfig(cfg)
	if err != nil {
		return Model{}, err
	}
	scale, err := cfg.Scale()
	if err != nil {
		return Model{}, err
	}
	m := Model{
		helpVisible: true,
		opts:        opts,
		scale:       scale,
		outline:     outline,
		data:        data,
		rotation:    animation.NewRotationState(cfg.Animation.Rotating),
		step:        cfg.Animation.RotationStep,
		frame:       time.Second / time.Duration(max(cfg.Animation.FPS, 1)),
		keys:        newKeyMap(),
		help:        help.New(),
	}
	c := cfg.Camera
	m.camera = scene.NewPerspectiveCamera(c.Fov, 1, c.Near, c.Far, c.Distance)
	m.orbit = controls.NewOrbit(m.camera, controls.OptionsFromConfig(c))
	m.renderer = render.New(render.NewCanvas(0, 0))
	if err := m.rebuild(data); err != nil {
		return Model{}, err
	}

	d := list.NewDefaultDelegate()
	m.l = list.New(legendItems(scale), d, 0, 0)
	m.l.Title = "Legend"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste lat,lng,value CSV (with header), GeoJSON or KML. ctrl+s to load; esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m, nil
}

// rebuild replaces the globe with one built from data. The group keeps its
// current orientation so a reload does not jump.
func (m *Model) rebuild(data []geom.GeoDataPoint) error {
	g, err := globe.Setup(m.opts, m.outline, data, m.scale)
	if err != nil {
		return err
	}
	if m.globe != nil {
		g.Group.Rotation = m.globe.Group.Rotation
	}
	m.globe = g
	m.data = data
	m.driver = animation.NewDriver(g.Group, g.Scene, m.camera, m.renderer, m.orbit, m.rotation, m.step)
	m.status = m.summary()
	return nil
}

func (m Model) summary() string {
	return fmt.Sprintf("points %d (%d dropped)  bars %d (%d dropped)",
		m.globe.PointStats.Accepted, m.globe.PointStats.Dropped,
		m.globe.BarStats.Accepted, m.globe.BarStats.Dropped)
}

func (m Model) Init() tea.Cmd { return m.nextFrame() }

func (m Model) nextFrame() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// Rotating reports whether the globe is spinning.
func (m Model) Rotating() bool { return m.rotation.IsRotating() }

// Frames is the number of frames drawn so far.
func (m Model) Frames() uint64 { return m.driver.Frames() }
