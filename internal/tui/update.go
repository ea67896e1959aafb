package tui

import (
	"fmt"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"geoglobe/internal/geom"
)

const (
	keyStep   = 0.1  // radians per arrow press
	dragSpeed = 0.05 // radians per dragged cell
	zoomStep  = 1.1
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.driver.Tick()
		return m, m.nextFrame()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
	case tea.KeyMsg:
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showAttrs && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)) {
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.toggle()
		case key.Matches(msg, m.keys.Left):
			m.orbit.Rotate(keyStep, 0)
		case key.Matches(msg, m.keys.Right):
			m.orbit.Rotate(-keyStep, 0)
		case key.Matches(msg, m.keys.Up):
			m.orbit.Rotate(0, -keyStep)
		case key.Matches(msg, m.keys.Down):
			m.orbit.Rotate(0, keyStep)
		case key.Matches(msg, m.keys.ZoomIn):
			m.orbit.Zoom(1 / zoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.orbit.Zoom(zoomStep)
		case key.Matches(msg, m.keys.Reset):
			m.orbit.Reset()
			m.status = "view reset"
		case key.Matches(msg, m.keys.Legend):
			m.showSidebar = !m.showSidebar
			m.resize()
		case key.Matches(msg, m.keys.Attrs):
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case key.Matches(msg, m.keys.Paste):
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			return m, m.ta.Focus()
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = !m.helpVisible
		}
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m *Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.pasteMode = false
		m.ta.Blur()
		m.status = m.summary()
		return *m, nil
	case key.Matches(msg, m.keys.Submit):
		data, err := geom.ParseGeoData(m.ta.Value())
		if err != nil {
			m.status = "paste error: " + err.Error()
			return *m, nil
		}
		if err := m.rebuild(data); err != nil {
			m.status = "rebuild error: " + err.Error()
			return *m, nil
		}
		m.status = fmt.Sprintf("loaded %d rows  %s", len(data), m.status)
		m.pasteMode = false
		m.ta.Blur()
		if m.showAttrs {
			m.refreshAttrs()
		}
		return *m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return *m, cmd
}

func (m *Model) updateMouse(msg tea.MouseMsg) {
	l := m.layout()
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.orbit.Zoom(1 / zoomStep)
	case msg.Button == tea.MouseButtonWheelDown:
		m.orbit.Zoom(zoomStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.onButton(msg.X, msg.Y) {
			m.toggle()
			return
		}
		if l.inCanvas(msg.X, msg.Y) {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case msg.Action == tea.MouseActionMotion && m.dragging:
		// a cell is about twice as tall as it is wide
		dx, dy := msg.X-m.dragX, msg.Y-m.dragY
		m.orbit.Rotate(-float64(dx)*dragSpeed, -float64(dy)*dragSpeed*2)
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionRelease:
		m.dragging = false
	}
}

func (m *Model) toggle() {
	if m.rotation.Toggle() {
		m.status = "rotation on  " + m.summary()
	} else {
		m.status = "rotation paused  " + m.summary()
	}
}

// resize fits the canvas, camera and side widgets to the current window.
func (m *Model) resize() {
	l := m.layout()
	c := m.renderer.Canvas()
	c.Resize(l.canvasW, l.canvasH)
	m.camera.SetAspect(c.Aspect())
	m.l.SetSize(sidebarWidth-2, l.canvasH)
	m.ta.SetWidth(l.canvasW)
	m.ta.SetHeight(min(l.canvasH, 12))
	m.help.Width = l.width
}
