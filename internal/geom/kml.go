package geom

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

type kmlPlacemark struct {
	Name       string `xml:"name"`
	LineString *struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"LineString"`
	Polygon *struct {
		Coordinates string `xml:"outerBoundaryIs>LinearRing>coordinates"`
	} `xml:"Polygon"`
}

type kmlDoc struct {
	Name          string         `xml:"Document>name"`
	Placemarks    []kmlPlacemark `xml:"Placemark"`
	DocPlacemarks []kmlPlacemark `xml:"Document>Placemark"`
}

// ParseSceneKML reads a scene from KML: the first Placemark with a two point
// LineString is the segment and the bounding box of the first Polygon's
// outer ring is the rectangle. Coordinates are "x,y[,z]"; z is ignored.
func ParseSceneKML(data []byte) (Scene, error) {
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Scene{}, errors.Wrap(err, "could not parse kml")
	}
	sc := Scene{Name: doc.Name}
	var haveSeg, haveRect bool
	for _, pm := range append(doc.Placemarks, doc.DocPlacemarks...) {
		if pm.LineString != nil && !haveSeg {
			pts, err := kmlCoordinates(pm.LineString.Coordinates)
			if err != nil {
				return Scene{}, err
			}
			if len(pts) != 2 {
				return Scene{}, errors.Wrapf(ErrUnsupportedGeometry, "kml LineString with %d points", len(pts))
			}
			sc.Segment = SegmentFromOrb(orb.LineString(pts))
			haveSeg = true
			if sc.Name == "" {
				sc.Name = pm.Name
			}
		}
		if pm.Polygon != nil && !haveRect {
			pts, err := kmlCoordinates(pm.Polygon.Coordinates)
			if err != nil {
				return Scene{}, err
			}
			if len(pts) == 0 {
				return Scene{}, errors.New("kml Polygon without coordinates")
			}
			sc.Rect = RectFromBound(orb.Ring(pts).Bound())
			haveRect = true
		}
	}
	if !haveSeg || !haveRect {
		return Scene{}, errors.New("kml scene: want a LineString and a Polygon placemark")
	}
	return sc, nil
}

// coordinates may contain multiple tuples separated by whitespace
func kmlCoordinates(s string) ([]orb.Point, error) {
	var pts []orb.Point
	for _, tuple := range strings.Fields(s) {
		vals := strings.Split(tuple, ",")
		if len(vals) < 2 {
			return nil, errors.Errorf("kml coordinate %q: want x,y", tuple)
		}
		x, err := strconv.ParseFloat(vals[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "kml coordinate %q", tuple)
		}
		y, err := strconv.ParseFloat(vals[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "kml coordinate %q", tuple)
		}
		pts = append(pts, orb.Point{x, y})
	}
	return pts, nil
}
