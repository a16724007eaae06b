package geom

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidRect         = errors.New("invalid rectangle")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
)

type Point struct {
	X float64
	Y float64
}

// Segment is a directed line segment. P0 and P1 keep the caller's labeling.
type Segment struct {
	P0 Point
	P1 Point
}

// Rect is an axis-aligned rectangle with closed bounds. Zero width or height
// is allowed.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

type Kind int

const (
	KindSegment Kind = iota
	KindPoint
)

func (k Kind) String() string {
	if k == KindPoint {
		return "point"
	}
	return "segment"
}

// Result is the closest approach of a segment to a rectangle: either a single
// point (P1 == P0) or a segment.
type Result struct {
	Kind Kind
	P0   Point
	P1   Point
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: Point{x0, y0}, P1: Point{x1, y1}}
}

func R(xmin, ymin, xmax, ymax float64) Rect {
	return Rect{MinX: xmin, MinY: ymin, MaxX: xmax, MaxY: ymax}
}

// Validate reports ErrInvalidRect when a bound is NaN or min exceeds max.
func (r Rect) Validate() error {
	if math.IsNaN(r.MinX) || math.IsNaN(r.MinY) || math.IsNaN(r.MaxX) || math.IsNaN(r.MaxY) {
		return errors.Wrapf(ErrInvalidRect, "NaN bound in [%g %g %g %g]", r.MinX, r.MinY, r.MaxX, r.MaxY)
	}
	if r.MinX > r.MaxX {
		return errors.Wrapf(ErrInvalidRect, "xmin %g > xmax %g", r.MinX, r.MaxX)
	}
	if r.MinY > r.MaxY {
		return errors.Wrapf(ErrInvalidRect, "ymin %g > ymax %g", r.MinY, r.MaxY)
	}
	return nil
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Union returns the smallest rectangle enclosing r and every given point.
func (r Rect) Union(pts ...Point) Rect {
	for _, p := range pts {
		r.MinX = math.Min(r.MinX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
	return r
}

func (s Segment) Reverse() Segment { return Segment{P0: s.P1, P1: s.P0} }
func (s Segment) IsHorizontal() bool { return s.P0.Y == s.P1.Y }
func (s Segment) IsVertical() bool { return s.P0.X == s.P1.X }
func (s Segment) Coords() [4]float64 { return [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y} }

func PointResult(p Point) Result { return Result{Kind: KindPoint, P0: p, P1: p} }

func SegmentResult(s Segment) Result { return Result{Kind: KindSegment, P0: s.P0, P1: s.P1} }

// Coords returns 2 numbers for a point result and 4 for a segment result.
func (r Result) Coords() []float64 {
	if r.Kind == KindPoint {
		return []float64{r.P0.X, r.P0.Y}
	}
	return []float64{r.P0.X, r.P0.Y, r.P1.X, r.P1.Y}
}

// IsDegenerate is true for a point result or a segment whose endpoints coincide.
func (r Result) IsDegenerate() bool {
	return r.Kind == KindPoint || r.P0 == r.P1
}

func (r Result) Segment() Segment { return Segment{P0: r.P0, P1: r.P1} }
