package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	sidebarWidth  = 28
	headerHeight  = 1
	toolbarHeight = 1
	footerHeight  = 2
)

const (
	stopLabel  = "Stop Rotation"
	startLabel = "Start Rotation"
)

// layout is the screen geometry shared by View and mouse hit-testing.
type layout struct {
	width   int
	sidebar int

	buttonY int

	canvasX, canvasY int
	canvasW, canvasH int
}

func (m Model) layout() layout {
	l := layout{width: max(10, m.width)}
	if m.showSidebar {
		l.sidebar = sidebarWidth
		l.canvasX = sidebarWidth + 1
	}
	l.buttonY = headerHeight
	l.canvasY = headerHeight + toolbarHeight
	l.canvasH = max(4, m.height-headerHeight-toolbarHeight-footerHeight)
	l.canvasW = max(10, l.width-l.canvasX)
	return l
}

func (l layout) inCanvas(x, y int) bool {
	return x >= l.canvasX && x < l.canvasX+l.canvasW && y >= l.canvasY && y < l.canvasY+l.canvasH
}

func (m Model) button() string {
	if m.rotation.IsRotating() {
		return activeButton.Render(stopLabel)
	}
	return pausedButton.Render(startLabel)
}

func (m Model) onButton(x, y int) bool {
	return y == m.layout().buttonY && x >= 0 && x < lipgloss.Width(m.button())
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	header := titleStyle.Render(" geoglobe ─ rotating magnitude globe ")
	header = lipgloss.NewStyle().Width(l.width).Render(header)

	toolbar := lipgloss.NewStyle().Width(l.width).Render(m.button())

	var body string
	switch {
	case m.pasteMode:
		body = lipgloss.NewStyle().Width(l.canvasW).Height(l.canvasH).Render(m.ta.View())
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(l.canvasW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(l.canvasH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		body = lipgloss.Place(l.canvasW, l.canvasH, lipgloss.Center, lipgloss.Center, attrsBox)
	default:
		canvas := strings.Join(m.renderer.Lines(), "\n")
		body = lipgloss.NewStyle().Width(l.canvasW).Height(l.canvasH).Render(canvas)
	}
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(l.sidebar).Height(l.canvasH).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", body)
	}

	status := dimStyle.Render(" " + m.status + " ")
	view := dimStyle.Render(fmt.Sprintf("  az %.0f° polar %.0f° dist %.0f  ",
		mgl64.RadToDeg(m.orbit.Azimuth()), mgl64.RadToDeg(m.orbit.Polar()), m.orbit.Distance()))
	spacerW := max(0, l.width-lipgloss.Width(status)-lipgloss.Width(view))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), view)
	helpLine := ""
	if m.helpVisible {
		if m.pasteMode {
			helpLine = m.help.View(pasteHelp{m.keys})
		} else {
			helpLine = m.help.View(m.keys)
		}
	}
	footer := lipgloss.NewStyle().Width(l.width).Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, " "+helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, toolbar, body, footer)
	return appStyle.Width(l.width).Height(m.height).Render(ui)
}
