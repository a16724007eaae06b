package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	"github.com/pkg/errors"

	"proximal/internal/geom"
	"proximal/internal/logging"
)

// sceneItem is a sidebar entry: either a built-in scenario or a scene file.
type sceneItem struct {
	title, desc string
	path        string
	scene       *geom.Scene
}

func (f sceneItem) Title() string       { return f.title }
func (f sceneItem) Description() string { return f.desc }
func (f sceneItem) FilterValue() string { return f.title }

func (m *Model) refreshScenes() {
	var items []list.Item
	for _, sc := range geom.Scenarios() {
		sc := sc
		items = append(items, sceneItem{title: sc.Name, desc: "scenario", scene: &sc})
	}
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		logging.Logde(errors.Wrap(err, "could not list scene files"))
		m.status = "read dir error: " + err.Error()
		m.l.SetItems(items)
		return
	}
	var files []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if slices.Contains(geom.SceneExts, ext) {
			files = append(files, sceneItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(files, func(i, j int) bool { return files[i].(sceneItem).Title() < files[j].(sceneItem).Title() })
	m.l.SetItems(append(items, files...))
}

func (m *Model) openItem(it sceneItem) {
	if it.scene != nil {
		m.loadScene(*it.scene)
		return
	}
	sc, err := geom.LoadScene(it.path)
	if err != nil {
		logging.Logwe(errors.Wrapf(err, "could not load scene %s", it.path))
		m.status = "load error: " + err.Error()
		return
	}
	m.loadScene(sc)
}

// loadScene replaces the rect and the lines with sc and fits the map to it.
func (m *Model) loadScene(sc geom.Scene) {
	if err := sc.Rect.Validate(); err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.rect = sc.Rect
	m.world = padded(sc.Rect.Union(sc.Segment.P0, sc.Segment.P1))
	m.zoom = 1.0
	m.offsetX, m.offsetY = 0, 0
	l := solve(sc.Segment, sc.Rect)
	m.active = &l
	m.drawing = false
	m.committed = nil
	slog.Info("scene loaded", "name", sc.Name, "segment", geom.SegmentWKT(sc.Segment), "rect", geom.RectWKT(sc.Rect))
	m.status = "loaded: " + sc.Name + "  " + describe(l.res)
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// padded grows r by a quarter of its larger side on every edge, and gives a
// zero-sized r some room.
func padded(r geom.Rect) geom.Rect {
	pad := max(r.Width(), r.Height()) / 4
	if pad == 0 {
		pad = 1
	}
	return geom.R(r.MinX-pad, r.MinY-pad, r.MaxX+pad, r.MaxY+pad)
}
