package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"proximal/internal/geom"
)

func TestFit(t *testing.T) {
	tr := Fit(geom.R(0, 0, 10, 10), 130, 130)
	x, y := tr.Apply(geom.Pt(5, 5))
	assert.InDelta(t, 65, x, 1e-9)
	assert.InDelta(t, 65, y, 1e-9)

	// y grows upward in the world and downward in the image
	_, yLow := tr.Apply(geom.Pt(0, 0))
	_, yHigh := tr.Apply(geom.Pt(0, 10))
	assert.Greater(t, yLow, yHigh)

	x0, _ := tr.Apply(geom.Pt(0, 0))
	x1, _ := tr.Apply(geom.Pt(10, 0))
	assert.InDelta(t, 100, x1-x0, 1e-9)
}

func TestFit_degenerateBounds(t *testing.T) {
	tr := Fit(geom.R(3, 3, 3, 3), 100, 50)
	x, y := tr.Apply(geom.Pt(3, 3))
	assert.InDelta(t, 50, x, 1e-6)
	assert.InDelta(t, 25, y, 1e-6)
}

func TestEncode(t *testing.T) {
	res := geom.PointResult(geom.Pt(0, 0))
	sc := geom.Scene{Segment: geom.Seg(-5, -5, -1, -1), Rect: geom.R(0, 0, 10, 10), Result: &res}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sc, 300, 300))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "background")

	tr := Fit(sc.Rect.Union(sc.Segment.P0, sc.Segment.P1), 300, 300)
	px, py := tr.Apply(res.P0)
	r, g, _, _ = img.At(int(px), int(py)).RGBA()
	assert.Greater(t, r>>8, uint32(200), "closest point is red")
	assert.Less(t, g>>8, uint32(100), "closest point is red")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	sc := geom.Scene{Segment: geom.Seg(-5, -1, 15, 11), Rect: geom.R(0, 0, 10, 10)}
	require.NoError(t, Save(path, sc, 64, 48))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, 48, cfg.Height)

	assert.Error(t, Save(path, sc, 0, 10))
}
