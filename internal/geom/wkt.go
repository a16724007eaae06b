package geom

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/pkg/errors"
)

// ParseSegmentWKT parses LINESTRING(x0 y0, x1 y1). Exactly two vertices are
// accepted.
func ParseSegmentWKT(s string) (Segment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Segment{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Segment{}, errors.Wrap(err, "could not parse segment wkt")
	}
	ls, ok := g.(orb.LineString)
	if !ok {
		return Segment{}, errors.Wrapf(ErrUnsupportedGeometry, "segment wkt: want LINESTRING, got %s", g.GeoJSONType())
	}
	if len(ls) != 2 {
		return Segment{}, errors.Errorf("segment wkt: want 2 points, got %d", len(ls))
	}
	return SegmentFromOrb(ls), nil
}

// ParseRectWKT parses any WKT geometry and returns its bounding box, so
// POLYGON, MULTIPOINT and LINESTRING inputs all describe a rectangle.
func ParseRectWKT(s string) (Rect, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rect{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Rect{}, errors.Wrap(err, "could not parse rect wkt")
	}
	if _, ok := g.(orb.Collection); ok {
		return Rect{}, errors.Wrap(ErrUnsupportedGeometry, "rect wkt: geometry collections are not supported")
	}
	return RectFromBound(g.Bound()), nil
}

// ResultWKT formats a result as POINT or LINESTRING.
func ResultWKT(r Result) string {
	return wkt.MarshalString(r.Orb())
}

func SegmentWKT(s Segment) string {
	return wkt.MarshalString(s.Orb())
}

// RectWKT formats the rectangle as a closed POLYGON ring.
func RectWKT(r Rect) string {
	return wkt.MarshalString(r.Orb())
}

func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

func (s Segment) Orb() orb.LineString {
	return orb.LineString{s.P0.Orb(), s.P1.Orb()}
}

func (r Rect) Bound() orb.Bound {
	return orb.Bound{Min: orb.Point{r.MinX, r.MinY}, Max: orb.Point{r.MaxX, r.MaxY}}
}

func (r Rect) Orb() orb.Polygon {
	return r.Bound().ToPolygon()
}

func (r Result) Orb() orb.Geometry {
	if r.Kind == KindPoint {
		return r.P0.Orb()
	}
	return r.Segment().Orb()
}

func SegmentFromOrb(ls orb.LineString) Segment {
	return Seg(ls[0][0], ls[0][1], ls[1][0], ls[1][1])
}

func RectFromBound(b orb.Bound) Rect {
	return R(b.Min[0], b.Min[1], b.Max[0], b.Max[1])
}
