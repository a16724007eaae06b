package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

// viewBounds is the world window shown in a w×h cell map before zoom and
// pan, widened on one axis so micro-pixels stay square.
func (m Model) viewBounds(w, h int) geom.Rect {
	wMic, hMic := float64(w*2), float64(h*4)
	c := m.world.Center()
	hx, hy := m.world.Width()/2, m.world.Height()/2
	if hx/hy < wMic/hMic {
		hx = hy * wMic / hMic
	} else {
		hy = hx * hMic / wMic
	}
	return geom.R(c.X-hx, c.Y-hy, c.X+hx, c.Y+hy)
}

// screenXYMicro maps a world point into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(p geom.Point, w, h int) (float64, float64) {
	v := m.viewBounds(w, h)
	nx := (p.X - v.MinX) / v.Width()
	ny := (p.Y - v.MinY) / v.Height()
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := zx*float64(w*2-1) + float64(m.offsetX*2)
	sy := (1.0-zy)*float64(h*4-1) + float64(m.offsetY*4)
	return sx, sy
}

// cellToWorld converts a map cell back to world coordinates using zoom and pan.
func (m Model) cellToWorld(cx, cy, w, h int) geom.Point {
	v := m.viewBounds(w, h)
	zx := float64(cx*2-m.offsetX*2) / float64(w*2-1)
	zy := 1.0 - float64(cy*4-m.offsetY*4)/float64(h*4-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	return geom.Pt(v.MinX+nx*v.Width(), v.MinY+ny*v.Height())
}

// drawSegment draws the part of s that is on the map. The solver returns
// that part whenever s crosses the map window.
func drawSegment(b *brailleBuf, s geom.Segment, m Model, w, h int) {
	x0, y0 := m.screenXYMicro(s.P0, w, h)
	x1, y1 := m.screenXYMicro(s.P1, w, h)
	screen := geom.R(0, 0, float64(w*2-1), float64(h*4-1))
	ms := geom.Seg(x0, y0, x1, y1)
	if !screen.Contains(ms.P0) || !screen.Contains(ms.P1) {
		if proximal.Classify(ms.P0, screen)&proximal.Classify(ms.P1, screen) != 0 {
			return
		}
		r := proximal.Closest(ms, screen)
		if !onLine(ms, r.P0) || !onLine(ms, r.P1) {
			return
		}
		ms = r.Segment()
	}
	b.drawLineMicro(round(ms.P0.X), round(ms.P0.Y), round(ms.P1.X), round(ms.P1.Y))
}

func onLine(s geom.Segment, p geom.Point) bool {
	dx, dy := s.P1.X-s.P0.X, s.P1.Y-s.P0.Y
	cross := dx*(p.Y-s.P0.Y) - dy*(p.X-s.P0.X)
	return math.Abs(cross) <= 1e-6*(dx*dx+dy*dy)+1e-9
}

func round(v float64) int { return int(math.Round(v)) }

func (m Model) renderMap(w, h int) string {
	c := newCanvas(w, h)
	guides := c.layer(guideStyle)
	rect := c.layer(rectStyle)
	past := c.layer(pastStyle)
	ink := c.layer(inkStyle)
	result := c.layer(resultStyle)

	// guide lines extend the rect edges across the map
	v := m.viewBounds(w, h)
	far := math.Max(v.Width(), v.Height())/m.zoom + math.Abs(float64(m.offsetX)) + math.Abs(float64(m.offsetY))
	far *= 4
	for _, x := range []float64{m.rect.MinX, m.rect.MaxX} {
		drawSegment(guides, geom.Seg(x, v.MinY-far, x, v.MaxY+far), m, w, h)
	}
	for _, y := range []float64{m.rect.MinY, m.rect.MaxY} {
		drawSegment(guides, geom.Seg(v.MinX-far, y, v.MaxX+far, y), m, w, h)
	}

	corners := []geom.Point{
		geom.Pt(m.rect.MinX, m.rect.MinY), geom.Pt(m.rect.MaxX, m.rect.MinY),
		geom.Pt(m.rect.MaxX, m.rect.MaxY), geom.Pt(m.rect.MinX, m.rect.MaxY),
	}
	for i := range corners {
		drawSegment(rect, geom.Segment{P0: corners[i], P1: corners[(i+1)%4]}, m, w, h)
	}

	for _, l := range m.committed {
		drawSegment(ink, l.seg, m, w, h)
		m.drawResult(past, l.res, w, h)
	}
	if m.active != nil {
		drawSegment(ink, m.active.seg, m, w, h)
		m.drawResult(result, m.active.res, w, h)
		if m.drawing {
			ax, ay := m.screenXYMicro(m.active.seg.P0, w, h)
			c.mark(round(ax), round(ay), '◯', markerStyle)
		}
	}

	lines := c.toLines()
	return strings.Join(lines, "\n")
}

// drawResult draws a segment result as a line and a point result as a bold dot.
func (m Model) drawResult(b *brailleBuf, r geom.Result, w, h int) {
	if !r.IsDegenerate() {
		drawSegment(b, r.Segment(), m, w, h)
		return
	}
	x, y := m.screenXYMicro(r.P0, w, h)
	b.drawDot(round(x), round(y))
}

func (m Model) renderResultBox() string {
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, dimStyle.Render(resultTitle(m.rect)), m.tbl.View()))
}
