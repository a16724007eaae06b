package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proximal/internal/geom"
	"proximal/internal/proximal"
	"proximal/internal/settings"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func sized(t *testing.T) Model {
	m := New(settings.Default(), filepath.Join(t.TempDir(), "proximal.json"))
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func TestNew(t *testing.T) {
	m := New(settings.Default(), "")
	assert.Equal(t, geom.R(-150, -150, 150, 150), m.rect)
	assert.Equal(t, geom.R(-450, -450, 450, 450), m.world)
	assert.Nil(t, m.active)
	assert.False(t, m.snap)
}

func TestDrawLine(t *testing.T) {
	m := sized(t)
	lay := m.layout()

	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, m.drawing)
	require.NotNil(t, m.active)
	anchor := m.cellToWorld(60, 20-lay.mapY, lay.mapW, lay.mapH)
	assert.Equal(t, anchor, m.active.seg.P0)

	m = update(t, m, tea.MouseMsg{X: 90, Y: 20, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	end := m.cellToWorld(90, 20-lay.mapY, lay.mapW, lay.mapH)
	assert.Equal(t, geom.Segment{P0: anchor, P1: end}, m.active.seg)
	assert.Equal(t, proximal.Closest(m.active.seg, m.rect), m.active.res)
	assert.True(t, m.hovering)

	m = update(t, m, tea.MouseMsg{X: 90, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drawing)
	assert.Nil(t, m.active)
	require.Len(t, m.committed, 1)
	assert.Equal(t, geom.Segment{P0: anchor, P1: end}, m.committed[0].seg)
}

func TestDrawLine_shiftSnaps(t *testing.T) {
	m := sized(t)
	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 90, Y: 25, Shift: true, Action: tea.MouseActionMotion})
	assert.Equal(t, m.active.seg.P0.Y, m.active.seg.P1.Y)
	assert.True(t, m.active.seg.IsHorizontal())

	m = update(t, m, tea.MouseMsg{X: 62, Y: 35, Shift: true, Action: tea.MouseActionMotion})
	assert.True(t, m.active.seg.IsVertical())
}

func TestDrawLine_snapToggle(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("s"))
	assert.True(t, m.snap)
	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 90, Y: 25, Action: tea.MouseActionMotion})
	assert.True(t, m.active.seg.IsHorizontal())
}

func TestEscCancels(t *testing.T) {
	m := sized(t)
	m = update(t, m, tea.MouseMsg{X: 60, Y: 20, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, key("esc"))
	assert.False(t, m.drawing)
	assert.Nil(t, m.active)
	assert.Empty(t, m.committed)
}

func TestMouseOutsideMap(t *testing.T) {
	m := sized(t)
	m = update(t, m, tea.MouseMsg{X: 60, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.drawing)
	assert.False(t, m.hovering)
}

func TestSnapToAxis(t *testing.T) {
	cases := []struct {
		name string
		p    geom.Point
		want geom.Point
	}{
		{"mostly horizontal", geom.Pt(10, 3), geom.Pt(10, 0)},
		{"mostly vertical", geom.Pt(3, -10), geom.Pt(0, -10)},
		{"tie goes horizontal", geom.Pt(4, 4), geom.Pt(4, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, snapToAxis(geom.Pt(0, 0), tc.p))
		})
	}
}

func TestPaste(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("p"))
	require.True(t, m.pasteMode)
	m.ta.SetValue("LINESTRING(-5 5,5 5)")
	m = update(t, m, key("enter"))
	assert.False(t, m.pasteMode)
	require.NotNil(t, m.active)
	assert.Equal(t, geom.Seg(-5, 5, 5, 5), m.active.seg)
	assert.Equal(t, geom.SegmentResult(geom.Seg(-5, 5, 5, 5)), m.active.res)

	m = update(t, m, key("p"))
	m.ta.SetValue("POLYGON((0 0,10 0,10 10,0 10,0 0))")
	m = update(t, m, key("enter"))
	assert.Equal(t, geom.R(0, 0, 10, 10), m.rect)
	assert.Equal(t, geom.SegmentResult(geom.Seg(0, 5, 5, 5)), m.active.res)
}

func TestPaste_errors(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("p"))
	m = update(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Equal(t, "paste: empty", m.status)

	m.ta.SetValue("LINESTRING(0 0,1 1,2 2)")
	m = update(t, m, key("enter"))
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "wkt error")

	m = update(t, m, key("esc"))
	assert.False(t, m.pasteMode)
}

func TestMirror(t *testing.T) {
	m := sized(t)
	m.loadScene(geom.Scene{Name: "corner", Segment: geom.Seg(-5, -5, -1, -1), Rect: geom.R(0, 0, 10, 10)})
	require.Equal(t, geom.PointResult(geom.Pt(0, 0)), m.active.res)

	m = update(t, m, key("m"))
	assert.Equal(t, geom.Seg(15, -5, 11, -1), m.active.seg)
	assert.Equal(t, geom.PointResult(geom.Pt(10, 0)), m.active.res)
}

func TestSidebarLoadsScenario(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("tab"))
	require.True(t, m.showSidebar)
	assert.GreaterOrEqual(t, len(m.l.Items()), len(geom.Scenarios()))

	m = update(t, m, key("enter"))
	first := geom.Scenarios()[0]
	require.NotNil(t, m.active)
	assert.Equal(t, first.Rect, m.rect)
	assert.Equal(t, first.Segment, m.active.seg)
	assert.Equal(t, geom.SegmentResult(geom.Seg(2, 2, 8, 8)), m.active.res)
}

func TestResultTable(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("a"))
	assert.False(t, m.showAttrs, "nothing to show yet")

	m.loadScene(geom.Scenarios()[2])
	m = update(t, m, key("a"))
	require.True(t, m.showAttrs)
	rows := m.tbl.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "LEFT|BOTTOM", rows[0][2])
	assert.Equal(t, "point", rows[0][4])
	assert.Equal(t, "0.0 0.0", rows[0][5])
}

func TestSaveSettings(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("s"))
	m = update(t, m, key("w"))
	assert.Contains(t, m.status, "settings saved")

	s, err := settings.Load(m.settingsPath)
	require.NoError(t, err)
	assert.True(t, s.SnapToAxis)
}

func TestZoomAndClear(t *testing.T) {
	m := sized(t)
	m = update(t, m, key("+"))
	assert.InDelta(t, 1.2, m.zoom, 1e-9)
	m = update(t, m, key("-"))
	assert.InDelta(t, 1.0, m.zoom, 1e-9)

	m.committed = []line{solve(geom.Seg(0, 0, 1, 1), m.rect)}
	m = update(t, m, key("c"))
	assert.Empty(t, m.committed)
}

func TestCellWorldRoundTrip(t *testing.T) {
	m := New(settings.Default(), "")
	m.zoom = 2.5
	m.offsetX, m.offsetY = 3, -2
	for _, c := range [][2]int{{0, 0}, {17, 9}, {79, 23}} {
		p := m.cellToWorld(c[0], c[1], 80, 24)
		x, y := m.screenXYMicro(p, 80, 24)
		assert.InDelta(t, float64(c[0]*2), x, 1e-6)
		assert.InDelta(t, float64(c[1]*4), y, 1e-6)
	}
}

func TestDrawSegment(t *testing.T) {
	m := New(settings.Default(), "")

	b := newBrailleBuf(10, 5)
	drawSegment(b, geom.Seg(-1e9, 0, 1e9, 0), m, 10, 5)
	lit := 0
	for _, cell := range b.m[2] {
		if cell != 0 {
			lit++
		}
	}
	assert.Equal(t, 10, lit, "a line through the map crosses every column")

	off := newBrailleBuf(10, 5)
	drawSegment(off, geom.Seg(-1e9, 1e6, 1e9, 1e6), m, 10, 5)
	for _, row := range off.m {
		for _, cell := range row {
			assert.Zero(t, cell)
		}
	}
}

func TestCanvas(t *testing.T) {
	c := newCanvas(3, 1)
	low := c.layer(lipgloss.NewStyle())
	high := c.layer(lipgloss.NewStyle())
	low.setPixel(0, 0)
	high.setPixel(1, 0)
	c.mark(4, 0, 'x', lipgloss.NewStyle())
	assert.Equal(t, []string{"⠉ x"}, c.toLines())
}

func TestView(t *testing.T) {
	m := sized(t)
	m.helpVisible = false
	m.loadScene(geom.Scenarios()[4])
	out := m.View()
	assert.Contains(t, out, "proximal")
	assert.Contains(t, out, "closest")
	assert.Empty(t, New(settings.Default(), "").View())
}
