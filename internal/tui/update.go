package tui

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"proximal/internal/geom"
	"proximal/internal/logging"
	"proximal/internal/proximal"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			lay := m.layout()
			m.l.SetSize(sidebarWidth-2, lay.contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				m.status = "view mode"
				return m, nil
			case "enter":
				m.applyPaste(strings.TrimSpace(m.ta.Value()))
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.drawing {
				m.drawing = false
				m.active = nil
				m.status = "line cancelled"
			}
		case "s":
			m.snap = !m.snap
			if m.snap && m.drawing {
				m.moveEndpoint(m.active.seg.P1, false)
			}
			m.status = fmt.Sprintf("snap to axis: %v", m.snap)
		case "m":
			m.mirror()
		case "w":
			m.settings.SnapToAxis = m.snap
			if err := m.settings.Save(m.settingsPath); err != nil {
				logging.Loge(errors.Wrapf(err, "could not save settings to %s", m.settingsPath))
				m.status = "save error: " + err.Error()
			} else {
				m.status = "settings saved to " + m.settingsPath
			}
		case "c":
			m.committed = nil
			m.status = "cleared"
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshScenes()
				lay := m.layout()
				m.l.SetSize(sidebarWidth-2, lay.contentH-2)
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(sceneItem); ok {
					m.openItem(it)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lay := m.layout()
	cx, cy := msg.X-lay.mapX, msg.Y-lay.mapY
	if cx < 0 || cx >= lay.mapW || cy < 0 || cy >= lay.mapH {
		m.hovering = false
		return
	}
	p := m.cellToWorld(cx, cy, lay.mapW, lay.mapH)
	m.hovering = true
	m.hoverAt = p

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if m.zoom < 64 {
			m.zoom *= 1.2
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if m.zoom > 0.05 {
			m.zoom /= 1.2
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.drawing {
			m.moveEndpoint(p, msg.Shift)
			m.commit()
			return
		}
		l := solve(geom.Segment{P0: p, P1: p}, m.rect)
		m.active = &l
		m.drawing = true
		m.status = fmt.Sprintf("anchor at (%.1f, %.1f)", p.X, p.Y)
	case msg.Action == tea.MouseActionMotion && m.drawing:
		m.moveEndpoint(p, msg.Shift)
	}
}

// moveEndpoint sets endpoint 1 of the active line and solves again.
func (m *Model) moveEndpoint(p geom.Point, shift bool) {
	if m.active == nil {
		return
	}
	if m.snap || shift {
		p = snapToAxis(m.active.seg.P0, p)
	}
	l := solve(geom.Segment{P0: m.active.seg.P0, P1: p}, m.rect)
	m.active = &l
	slog.Debug("closest",
		"segment", geom.SegmentWKT(l.seg),
		"outcode0", proximal.Classify(l.seg.P0, m.rect),
		"outcode1", proximal.Classify(l.seg.P1, m.rect),
		"result", geom.ResultWKT(l.res),
	)
	m.status = describe(l.res)
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m *Model) commit() {
	if m.active == nil {
		return
	}
	m.committed = append(m.committed, *m.active)
	m.active = nil
	m.drawing = false
	m.status = fmt.Sprintf("%d lines", len(m.committed))
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// snapToAxis makes the segment from anchor to p horizontal or vertical,
// whichever is closer.
func snapToAxis(anchor, p geom.Point) geom.Point {
	if math.Abs(anchor.X-p.X) < math.Abs(anchor.Y-p.Y) {
		p.X = anchor.X
	} else {
		p.Y = anchor.Y
	}
	return p
}

// mirror reflects every line across the rect's vertical centerline.
func (m *Model) mirror() {
	if m.active != nil {
		l := solve(m.active.seg.ReflectX(m.rect), m.rect)
		m.active = &l
	}
	for i, l := range m.committed {
		m.committed[i] = line{seg: l.seg.ReflectX(m.rect), res: l.res.ReflectX(m.rect)}
	}
	m.status = "mirrored"
	if m.showAttrs {
		m.refreshAttrs()
	}
}

func (m *Model) applyPaste(w string) {
	if w == "" {
		m.status = "paste: empty"
		return
	}
	if strings.HasPrefix(strings.ToUpper(w), "LINESTRING") {
		seg, err := geom.ParseSegmentWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return
		}
		m.loadScene(geom.Scene{Name: "pasted", Segment: seg, Rect: m.rect})
	} else {
		r, err := geom.ParseRectWKT(w)
		if err != nil {
			m.status = "wkt error: " + err.Error()
			return
		}
		sc := geom.Scene{Name: "pasted", Rect: r}
		if m.active != nil {
			sc.Segment = m.active.seg
		} else {
			c := r.Center()
			sc.Segment = geom.Segment{P0: c, P1: c}
		}
		m.loadScene(sc)
	}
	m.pasteMode = false
	m.ta.Blur()
}

func describe(r geom.Result) string {
	if r.Kind == geom.KindPoint {
		return fmt.Sprintf("closest point (%.2f, %.2f)", r.P0.X, r.P0.Y)
	}
	return fmt.Sprintf("closest segment (%.2f, %.2f)-(%.2f, %.2f)", r.P0.X, r.P0.Y, r.P1.X, r.P1.Y)
}
