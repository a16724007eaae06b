// Package render draws a closest-approach scene into a PNG image.
package render

import (
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/pkg/errors"

	"proximal/internal/geom"
)

// Colours follow the interactive view: black rect and input, red answer.
var (
	background = gg.White
	guide      = gg.Hex("#eeeeee")
	ink        = gg.Hex("#000000")
	closest    = gg.Hex("#f30f30")
)

const margin = 0.15

// Transform maps world coordinates (y up) to image pixels (y down).
type Transform struct {
	scale  float64
	offX   float64
	offY   float64
	height float64
}

// Fit returns the transform that shows bounds, padded by a margin, centred
// in a w×h image with a uniform scale.
func Fit(bounds geom.Rect, w, h int) Transform {
	bw := math.Max(bounds.Width(), 1e-9)
	bh := math.Max(bounds.Height(), 1e-9)
	pad := math.Max(bw, bh) * margin
	bw += 2 * pad
	bh += 2 * pad
	scale := math.Min(float64(w)/bw, float64(h)/bh)
	c := bounds.Center()
	return Transform{
		scale:  scale,
		offX:   float64(w)/2 - c.X*scale,
		offY:   float64(h)/2 - c.Y*scale,
		height: float64(h),
	}
}

func (t Transform) Apply(p geom.Point) (float64, float64) {
	return p.X*t.scale + t.offX, t.height - (p.Y*t.scale + t.offY)
}

// Draw paints the scene onto dc. The result is drawn only when sc.Result is
// set.
func Draw(dc *gg.Context, sc geom.Scene) error {
	w, h := dc.Width(), dc.Height()
	view := sc.Rect.Union(sc.Segment.P0, sc.Segment.P1)
	t := Fit(view, w, h)
	lw := math.Max(1, float64(min(w, h))/300)

	dc.ClearWithColor(background)

	// guide lines along the rect edges, across the whole image
	x0, y0 := t.Apply(geom.Pt(sc.Rect.MinX, sc.Rect.MinY))
	x1, y1 := t.Apply(geom.Pt(sc.Rect.MaxX, sc.Rect.MaxY))
	dc.SetColor(guide.Color())
	dc.SetLineWidth(lw * 1.5)
	for _, x := range []float64{x0, x1} {
		dc.DrawLine(x, 0, x, float64(h))
	}
	for _, y := range []float64{y0, y1} {
		dc.DrawLine(0, y, float64(w), y)
	}
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(err, "could not stroke guides")
	}

	dc.SetColor(ink.Color())
	dc.SetLineWidth(lw * 1.5)
	dc.DrawRectangle(math.Min(x0, x1), math.Min(y0, y1), math.Abs(x1-x0), math.Abs(y1-y0))
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(err, "could not stroke rect")
	}

	sx0, sy0 := t.Apply(sc.Segment.P0)
	sx1, sy1 := t.Apply(sc.Segment.P1)
	dc.SetLineWidth(lw * 1.5)
	dc.DrawLine(sx0, sy0, sx1, sy1)
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(err, "could not stroke segment")
	}

	if sc.Result == nil {
		return nil
	}
	dc.SetColor(closest.Color())
	rx0, ry0 := t.Apply(sc.Result.P0)
	if sc.Result.IsDegenerate() {
		dc.DrawCircle(rx0, ry0, lw*4)
		return errors.Wrap(dc.Fill(), "could not fill closest point")
	}
	rx1, ry1 := t.Apply(sc.Result.P1)
	dc.SetLineWidth(lw * 2.5)
	dc.DrawLine(rx0, ry0, rx1, ry1)
	return errors.Wrap(dc.Stroke(), "could not stroke closest segment")
}

// Encode renders sc as a w×h PNG.
func Encode(out io.Writer, sc geom.Scene, w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.Errorf("invalid image size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	if err := Draw(dc, sc); err != nil {
		return err
	}
	return errors.Wrap(dc.EncodePNG(out), "could not encode png")
}

// Save renders sc into a PNG file at path.
func Save(path string, sc geom.Scene, w, h int) error {
	if w <= 0 || h <= 0 {
		return errors.Errorf("invalid image size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	defer dc.Close()
	if err := Draw(dc, sc); err != nil {
		return err
	}
	return errors.Wrap(dc.SavePNG(path), "could not save png")
}
