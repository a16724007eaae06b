// Package proximal finds the part of a line segment closest to an
// axis-aligned rectangle, using a Cohen-Sutherland style clipper that reports
// the closest approach instead of rejecting segments outside the rectangle.
package proximal

import (
	"proximal/internal/geom"
)

// maxClipSteps bounds the clipping loop. Finite input needs at most four
// steps; the budget only runs out on NaN or infinite coordinates.
const maxClipSteps = 8

// side handles one rectangle edge. Entries in sides are tried in order, which
// fixes the tie-break LEFT > RIGHT > BOTTOM > TOP.
type side struct {
	code Outcode
	name string
	// nearest is the single closest point when both endpoints lie beyond
	// this edge.
	nearest func(s geom.Segment, r geom.Rect) geom.Point
	// intersect is where the segment's line crosses this edge's line.
	intersect func(s geom.Segment, r geom.Rect) geom.Point
}

var sides = [...]side{
	{
		code: Left,
		name: "LEFT",
		nearest: func(s geom.Segment, r geom.Rect) geom.Point {
			y := s.P1.Y
			if s.P0.X > s.P1.X {
				y = s.P0.Y
			}
			return geom.Pt(r.MinX, Clamp(y, r.MinY, r.MaxY))
		},
		intersect: func(s geom.Segment, r geom.Rect) geom.Point {
			return geom.Pt(r.MinX, atX(s, r.MinX))
		},
	},
	{
		code: Right,
		name: "RIGHT",
		nearest: func(s geom.Segment, r geom.Rect) geom.Point {
			y := s.P1.Y
			if s.P0.X < s.P1.X {
				y = s.P0.Y
			}
			return geom.Pt(r.MaxX, Clamp(y, r.MinY, r.MaxY))
		},
		intersect: func(s geom.Segment, r geom.Rect) geom.Point {
			return geom.Pt(r.MaxX, atX(s, r.MaxX))
		},
	},
	{
		code: Bottom,
		name: "BOTTOM",
		nearest: func(s geom.Segment, r geom.Rect) geom.Point {
			x := s.P1.X
			if s.P0.Y > s.P1.Y {
				x = s.P0.X
			}
			return geom.Pt(Clamp(x, r.MinX, r.MaxX), r.MinY)
		},
		intersect: func(s geom.Segment, r geom.Rect) geom.Point {
			return geom.Pt(atY(s, r.MinY), r.MinY)
		},
	},
	{
		code: Top,
		name: "TOP",
		nearest: func(s geom.Segment, r geom.Rect) geom.Point {
			x := s.P1.X
			if s.P0.Y < s.P1.Y {
				x = s.P0.X
			}
			return geom.Pt(Clamp(x, r.MinX, r.MaxX), r.MaxY)
		},
		intersect: func(s geom.Segment, r geom.Rect) geom.Point {
			return geom.Pt(atY(s, r.MaxY), r.MaxY)
		},
	},
}

// Priority returns the side flags in the order they are consulted.
func Priority() []Outcode {
	out := make([]Outcode, len(sides))
	for i, s := range sides {
		out[i] = s.code
	}
	return out
}

func firstSide(code Outcode) *side {
	for i := range sides {
		if code.Has(sides[i].code) {
			return &sides[i]
		}
	}
	return nil
}

// atX is the y of the segment's line at x. The segment must not be vertical.
func atX(s geom.Segment, x float64) float64 {
	return s.P0.Y + (s.P1.Y-s.P0.Y)*(x-s.P0.X)/(s.P1.X-s.P0.X)
}

// atY is the x of the segment's line at y. The segment must not be horizontal.
func atY(s geom.Segment, y float64) float64 {
	return s.P0.X + (s.P1.X-s.P0.X)*(y-s.P0.Y)/(s.P1.Y-s.P0.Y)
}

// Closest returns the point or sub-segment of seg closest to r. A segment
// that already lies inside r is returned unchanged; a segment wholly beyond
// one edge collapses to a single point on that edge.
//
// r must satisfy MinX <= MaxX and MinY <= MaxY; use ClosestChecked when that
// is not known. NaN or infinite coordinates give unspecified output.
func Closest(seg geom.Segment, r geom.Rect) geom.Result {
	// Exact comparison: nearly aligned segments take the general path.
	if seg.IsHorizontal() || seg.IsVertical() {
		return geom.SegmentResult(clampSegment(seg, r))
	}

	code0 := Classify(seg.P0, r)
	code1 := Classify(seg.P1, r)

	for step := 0; step <= maxClipSteps; step++ {
		if code0 == Inside && code1 == Inside {
			return geom.SegmentResult(seg)
		}

		if shared := code0 & code1; shared != Inside {
			return geom.PointResult(firstSide(shared).nearest(seg, r))
		}

		code := code0
		if code == Inside {
			code = code1
		}
		p := firstSide(code).intersect(seg, r)
		if code == code0 {
			seg.P0 = p
			code0 = Classify(p, r)
		} else {
			seg.P1 = p
			code1 = Classify(p, r)
		}
	}
	return geom.SegmentResult(clampSegment(seg, r))
}

// ClosestChecked validates r before calling Closest.
func ClosestChecked(seg geom.Segment, r geom.Rect) (geom.Result, error) {
	if err := r.Validate(); err != nil {
		return geom.Result{}, err
	}
	return Closest(seg, r), nil
}

// ClosestCoords is the flat form of Closest: it returns two numbers for a
// point and four for a segment.
func ClosestCoords(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) []float64 {
	return Closest(geom.Seg(x0, y0, x1, y1), geom.R(xmin, ymin, xmax, ymax)).Coords()
}

func clampSegment(s geom.Segment, r geom.Rect) geom.Segment {
	x0, x1 := ClampPair(s.P0.X, s.P1.X, r.MinX, r.MaxX)
	y0, y1 := ClampPair(s.P0.Y, s.P1.Y, r.MinY, r.MaxY)
	return geom.Seg(x0, y0, x1, y1)
}
