package tui

import (
	"fmt"
	"strconv"

	table "github.com/charmbracelet/bubbles/table"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

var attrColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "segment", Width: 30},
	{Title: "p0", Width: 12},
	{Title: "p1", Width: 12},
	{Title: "kind", Width: 8},
	{Title: "closest", Width: 30},
}

// refreshAttrs rebuilds the result table from the committed lines followed
// by the active one.
func (m *Model) refreshAttrs() {
	rows := make([]table.Row, 0, len(m.committed)+1)
	for i, l := range m.committed {
		rows = append(rows, m.attrRow(strconv.Itoa(i+1), l))
	}
	if m.active != nil {
		rows = append(rows, m.attrRow("*", *m.active))
	}
	if len(rows) == 0 {
		m.showAttrs = false
		m.status = "no lines yet"
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(attrColumns)
	m.tbl.SetRows(rows)
}

func (m *Model) attrRow(id string, l line) table.Row {
	cs := l.seg.Coords()
	return table.Row{
		id,
		formatCoords(cs[:]),
		proximal.Classify(l.seg.P0, m.rect).String(),
		proximal.Classify(l.seg.P1, m.rect).String(),
		l.res.Kind.String(),
		formatCoords(l.res.Coords()),
	}
}

func formatCoords(cs []float64) string {
	out := ""
	for i, c := range cs {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.1f", c)
	}
	return out
}

func resultTitle(r geom.Rect) string {
	return "rect " + formatCoords([]float64{r.MinX, r.MinY, r.MaxX, r.MaxY})
}
