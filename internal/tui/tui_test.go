package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"geoglobe/internal/config"
	"geoglobe/internal/geom"
	"geoglobe/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	outline := []geom.FlatPoint{{X: 1000, Y: 500}, {X: 3000, Y: 1500}, {X: 2049, Y: 984}}
	data := []geom.GeoDataPoint{{Lat: 35.68, Lng: 139.69, Value: 3740000}, {Lat: 0, Lng: 0, Value: 60000}}
	m, err := New(config.Default(), outline, data)
	if err != nil {
		t.Fatal(err)
	}
	return send(m, tea.WindowSizeMsg{Width: 80, Height: 30})
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestNewBuildsGlobe(t *testing.T) {
	m := newTestModel(t)
	if err := m.globe.Validate(); err != nil {
		t.Fatal(err)
	}
	if m.globe.PointStats.Dropped != 1 || len(m.globe.Bars) != 1 {
		t.Fatalf("points %+v bars %d", m.globe.PointStats, len(m.globe.Bars))
	}
	if !m.Rotating() {
		t.Fatal("default config should start rotating")
	}
	if w, h := m.renderer.Canvas().Size(); w != 80 || h != 26 {
		t.Fatalf("canvas = %dx%d", w, h)
	}
	if m.camera.Aspect != m.renderer.Canvas().Aspect() {
		t.Fatalf("camera aspect %v canvas %v", m.camera.Aspect, m.renderer.Canvas().Aspect())
	}
}

func TestToggleWithSpace(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.View(), stopLabel) {
		t.Fatal("button should offer to stop")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Rotating() {
		t.Fatal("space did not pause")
	}
	if !strings.Contains(m.View(), startLabel) {
		t.Fatal("button should offer to start")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Rotating() {
		t.Fatal("second space did not resume")
	}
}

func TestToggleWithClick(t *testing.T) {
	m := newTestModel(t)
	click := tea.MouseMsg{X: 2, Y: headerHeight, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(m, click)
	if m.Rotating() {
		t.Fatal("click on the button did not pause")
	}
	m = send(m, click)
	if !m.Rotating() {
		t.Fatal("second click did not resume")
	}
	// a click on the canvas starts a drag instead
	m = send(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Rotating() || !m.dragging {
		t.Fatalf("canvas click: rotating %v dragging %v", m.Rotating(), m.dragging)
	}
}

func TestFramesRotateOnlyWhileRotating(t *testing.T) {
	m := newTestModel(t)
	m = send(m, frameMsg{})
	m = send(m, frameMsg{})
	if m.Frames() != 2 || m.driver.Angle() != 2*m.step {
		t.Fatalf("frames %d angle %v", m.Frames(), m.driver.Angle())
	}
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(m, frameMsg{})
	if m.Frames() != 3 || m.driver.Angle() != 2*m.step {
		t.Fatalf("paused frame rotated: frames %d angle %v", m.Frames(), m.driver.Angle())
	}
	if m.renderer.Canvas().Lit() == 0 {
		t.Fatal("frame drew nothing")
	}
}

func TestDragOrbitsCamera(t *testing.T) {
	m := newTestModel(t)
	before := m.camera.Position
	m = send(m, tea.MouseMsg{X: 40, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(m, tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = send(m, tea.MouseMsg{X: 50, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging {
		t.Fatal("release did not end the drag")
	}
	m = send(m, frameMsg{})
	if m.camera.Position.ApproxEqualThreshold(before, 1e-9) {
		t.Fatal("camera did not move")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if !m.camera.Position.ApproxEqualThreshold(before, 1e-9) {
		t.Fatalf("reset left camera at %v", m.camera.Position)
	}
}

func TestLegendSidebarShrinksCanvas(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if w, _ := m.renderer.Canvas().Size(); w != 80-sidebarWidth-1 {
		t.Fatalf("canvas width = %d", w)
	}
	if len(m.l.Items()) != 8 || !strings.Contains(m.View(), "Legend") {
		t.Fatal("legend not shown")
	}
}

func TestAttrsTable(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	if !m.showAttrs {
		t.Fatal("table not shown")
	}
	rows := m.tbl.Rows()
	if len(rows) != 2 || rows[0][6] != "yes" || rows[1][6] != "dropped" {
		t.Fatalf("rows = %v", rows)
	}
	if rows[1][4] != "1.00" {
		t.Fatalf("height = %s", rows[1][4])
	}
}

func TestPasteReplacesBars(t *testing.T) {
	m := newTestModel(t)
	m = send(m, frameMsg{})
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if !m.pasteMode {
		t.Fatal("not in paste mode")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lat,lng,value\n10,20,5000\n-30,40,70000\n15,-60,2000000"), Paste: true})
	// keys go to the text box, not to the globe
	rotating := m.Rotating()
	m = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.Rotating() != rotating {
		t.Fatal("space toggled rotation while pasting")
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.pasteMode {
		t.Fatalf("still pasting: %s", m.status)
	}
	if len(m.globe.Bars) != 3 || m.globe.Bars[2].Material.Color.Hex() != m.scale.Hex(2000000) {
		t.Fatalf("bars = %d status %q", len(m.globe.Bars), m.status)
	}
	if m.globe.Group.Count(scene.KindPointCloud) != 1 {
		t.Fatal("outline lost on reload")
	}
}

func TestPasteErrorKeepsGlobe(t *testing.T) {
	m := newTestModel(t)
	bars := m.globe.Bars
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("nothing useful"), Paste: true})
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.pasteMode || !strings.HasPrefix(m.status, "paste error") {
		t.Fatalf("status = %q", m.status)
	}
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.pasteMode || len(m.globe.Bars) != len(bars) {
		t.Fatal("cancel changed the globe")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}
