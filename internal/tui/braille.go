package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) drawDot(mx, my int) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			b.setPixel(mx+dx, my+dy)
		}
	}
}

type mark struct {
	r     rune
	style lipgloss.Style
}

// canvas stacks braille layers. A cell shows the dots of every layer in the
// style of the topmost layer with a dot in it; a mark replaces the cell.
type canvas struct {
	w, h   int
	layers []*brailleBuf
	styles []lipgloss.Style
	marks  map[[2]int]mark
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, marks: map[[2]int]mark{}}
}

func (c *canvas) layer(style lipgloss.Style) *brailleBuf {
	b := newBrailleBuf(c.w, c.h)
	c.layers = append(c.layers, b)
	c.styles = append(c.styles, style)
	return b
}

// mark puts r at the cell holding micro-pixel (mx, my).
func (c *canvas) mark(mx, my int, r rune, style lipgloss.Style) {
	if mx < 0 || my < 0 || mx/2 >= c.w || my/4 >= c.h {
		return
	}
	c.marks[[2]int{mx / 2, my / 4}] = mark{r: r, style: style}
}

func (c *canvas) toLines() []string {
	out := make([]string, c.h)
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		cur := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur < 0 {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(c.styles[cur].Render(run.String()))
			}
			run.Reset()
		}
		for x := 0; x < c.w; x++ {
			if mk, ok := c.marks[[2]int{x, y}]; ok {
				flush()
				sb.WriteString(mk.style.Render(string(mk.r)))
				continue
			}
			var mask uint8
			top := -1
			for i, l := range c.layers {
				if l.m[y][x] != 0 {
					mask |= l.m[y][x]
					top = i
				}
			}
			if top != cur {
				flush()
				cur = top
			}
			if mask == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(rune(0x2800 + int(mask)))
			}
		}
		flush()
		out[y] = sb.String()
	}
	return out
}
