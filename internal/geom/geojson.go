package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Feature roles used in scene collections.
const (
	RoleRect    = "rect"
	RoleSegment = "segment"
	RoleClosest = "closest"
)

// Scene is one closest-approach problem, optionally with its answer.
type Scene struct {
	Name    string
	Segment Segment
	Rect    Rect
	Result  *Result
}

// FeatureCollection builds rect, segment and (when solved) closest features.
func (s Scene) FeatureCollection() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	add := func(g orb.Geometry, role string) {
		f := geojson.NewFeature(g)
		f.Properties["role"] = role
		if s.Name != "" {
			f.Properties["scene"] = s.Name
		}
		fc.Append(f)
	}
	add(s.Rect.Orb(), RoleRect)
	add(s.Segment.Orb(), RoleSegment)
	if s.Result != nil {
		add(s.Result.Orb(), RoleClosest)
		fc.Features[len(fc.Features)-1].Properties["kind"] = s.Result.Kind.String()
	}
	return fc
}

// MarshalScenes encodes every scene's features into one collection.
func MarshalScenes(scenes []Scene) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, s := range scenes {
		fc.Features = append(fc.Features, s.FeatureCollection().Features...)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal geojson")
	}
	return b, nil
}

// ParseSceneGeoJSON reads a scene from a FeatureCollection. Features tagged
// with a role property win; otherwise the first LineString is the segment
// and the bounding box of the first Polygon is the rectangle.
func ParseSceneGeoJSON(data []byte) (Scene, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Scene{}, errors.Wrap(err, "could not parse geojson")
	}
	var sc Scene
	var haveSeg, haveRect bool
	var fallSeg *Segment
	var fallRect *Rect
	for _, f := range fc.Features {
		role := f.Properties.MustString("role", "")
		switch g := f.Geometry.(type) {
		case orb.LineString:
			if len(g) != 2 {
				continue
			}
			seg := SegmentFromOrb(g)
			if role == RoleSegment {
				sc.Segment, haveSeg = seg, true
			} else if fallSeg == nil && role == "" {
				fallSeg = &seg
			}
		case orb.Polygon, orb.MultiPoint:
			r := RectFromBound(g.Bound())
			if role == RoleRect {
				sc.Rect, haveRect = r, true
			} else if fallRect == nil && role == "" {
				fallRect = &r
			}
		}
		if sc.Name == "" {
			sc.Name = f.Properties.MustString("scene", "")
		}
	}
	if !haveSeg && fallSeg != nil {
		sc.Segment, haveSeg = *fallSeg, true
	}
	if !haveRect && fallRect != nil {
		sc.Rect, haveRect = *fallRect, true
	}
	if !haveSeg || !haveRect {
		return Scene{}, errors.New("geojson: scene needs a 2-point LineString and a Polygon")
	}
	return sc, nil
}
