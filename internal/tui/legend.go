package tui

import (
	"fmt"
	"strconv"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"geoglobe/internal/colorscale"
)

type legendItem struct {
	title, desc string
	hex         string
}

func (i legendItem) Title() string       { return i.title }
func (i legendItem) Description() string { return i.desc }
func (i legendItem) FilterValue() string { return i.hex }

// legendItems lists one entry per color stop, lowest first.
func legendItems(s *colorscale.Scale) []list.Item {
	stops := s.Legend()
	items := make([]list.Item, 0, len(stops))
	for i, st := range stops {
		hex := st.Color.Hex()
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██")
		label := "≥ " + formatValue(st.At)
		if i == 0 {
			label = "≤ " + formatValue(st.At)
		}
		items = append(items, legendItem{
			title: swatch + " " + label,
			desc:  hex,
			hex:   hex,
		})
	}
	return items
}

// formatValue prints magnitudes compactly: 950, 12k, 1.5M.
func formatValue(v float64) string {
	switch {
	case v >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', -1, 64) + "M"
	case v >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', -1, 64) + "k"
	default:
		return fmt.Sprintf("%g", v)
	}
}
