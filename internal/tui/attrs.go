package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"geoglobe/internal/globe"
	"geoglobe/internal/projection"
)

var attrColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "lat", Width: 8},
	{Title: "lng", Width: 9},
	{Title: "value", Width: 10},
	{Title: "height", Width: 8},
	{Title: "color", Width: 8},
	{Title: "bar", Width: 7},
}

// refreshAttrs rebuilds the table rows from the current magnitude data. Rows
// whose location falls outside the projection policy are marked dropped.
func (m *Model) refreshAttrs() {
	if len(m.data) == 0 {
		m.showAttrs = false
		m.status = "no magnitude data loaded"
		return
	}
	rows := make([]table.Row, 0, len(m.data))
	for i, d := range m.data {
		shown := "yes"
		if !projection.LatLngToSphere(d.Lat, d.Lng, m.opts.Radius).Valid(m.opts.Policy) {
			shown = "dropped"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%.2f", d.Lat),
			fmt.Sprintf("%.2f", d.Lng),
			formatValue(d.Value),
			fmt.Sprintf("%.2f", globe.BarHeight(d.Value, m.opts.BarScaleFactor, m.opts.BarMinHeight)),
			m.scale.Hex(d.Value),
			shown,
		})
	}
	// clear rows first so the table never sees rows wider than its columns
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(attrColumns)
	m.tbl.SetRows(rows)
}
