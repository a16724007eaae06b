package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// frame is where the map sits on screen, in cells.
type frame struct {
	contentW, contentH int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() frame {
	var lay frame
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	side := 0
	if m.showSidebar {
		side = sidebarWidth + 1
	}
	lay.mapX = side
	lay.mapY = headerHeight
	lay.mapW = max(10, lay.contentW-side)
	lay.mapH = lay.contentH
	return lay
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
