package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"proximal/internal/geom"
	"proximal/internal/proximal"
	"proximal/internal/settings"
)

// line is a drawn segment together with its answer for the rect it was
// drawn against.
type line struct {
	seg geom.Segment
	res geom.Result
}

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	settingsPath string
	settings     settings.Settings

	// world is the region the map fits to before zoom and pan
	world geom.Rect
	rect  geom.Rect
	snap  bool

	// active line; drawing means endpoint 1 follows the mouse
	active    *line
	drawing   bool
	committed []line

	// sidebar with built-in scenarios and scene files
	cwd string
	l   list.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// result table
	showAttrs bool
	tbl       table.Model

	// hover state
	hovering bool
	hoverAt  geom.Point
}

// New builds the model for the rect described by s. settingsPath is where
// `w` writes the settings back.
func New(s settings.Settings, settingsPath string) Model {
	m := Model{
		showSidebar:  false,
		helpVisible:  true,
		zoom:         1.0,
		status:       "click to place a line",
		settingsPath: settingsPath,
		settings:     s,
		snap:         s.SnapToAxis,
	}
	half := s.CanvasSize / 2
	m.world = geom.R(-half, -half, half, half)
	m.rect = geom.R(-s.RectHalfSize, -s.RectHalfSize, s.RectHalfSize, s.RectHalfSize)
	m.cwd, _ = os.Getwd()

	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenes"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)

	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here: LINESTRING sets the line, POLYGON sets the rect. Enter applies; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)

	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshScenes()
	return m
}

// NewWithScene preloads a scene at launch.
func NewWithScene(s settings.Settings, settingsPath string, sc geom.Scene) Model {
	m := New(s, settingsPath)
	m.loadScene(sc)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func solve(seg geom.Segment, r geom.Rect) line {
	return line{seg: seg, res: proximal.Closest(seg, r)}
}
