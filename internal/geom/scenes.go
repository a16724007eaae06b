package geom

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// SceneExts lists the file extensions LoadScene understands.
var SceneExts = []string{".wkt", ".geojson", ".json", ".csv", ".kml"}

// LoadScene reads a scene file. A .wkt file holds the segment LINESTRING on
// its first non-empty line and the rectangle geometry on the next one; a
// .csv file contributes its first row; .kml is read by ParseSceneKML.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, errors.Wrap(err, "could not read scene file")
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var sc Scene
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wkt":
		sc, err = parseSceneWKT(data)
	case ".geojson", ".json":
		sc, err = ParseSceneGeoJSON(data)
	case ".kml":
		sc, err = ParseSceneKML(data)
	case ".csv":
		var scenes []Scene
		scenes, err = ReadBatchCSV(bytes.NewReader(data))
		if err == nil {
			sc = scenes[0]
		}
	default:
		return Scene{}, errors.Errorf("unsupported scene file: %s", ext)
	}
	if err != nil {
		return Scene{}, errors.Wrap(err, filepath.Base(path))
	}
	if sc.Name == "" {
		sc.Name = name
	}
	return sc, nil
}

func parseSceneWKT(data []byte) (Scene, error) {
	var lines []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if l := strings.TrimSpace(sc.Text()); l != "" && !strings.HasPrefix(l, "#") {
			lines = append(lines, l)
		}
	}
	if len(lines) < 2 {
		return Scene{}, errors.New("wkt scene: want a segment line and a rect line")
	}
	seg, err := ParseSegmentWKT(lines[0])
	if err != nil {
		return Scene{}, err
	}
	rect, err := ParseRectWKT(lines[1])
	if err != nil {
		return Scene{}, err
	}
	return Scene{Segment: seg, Rect: rect}, nil
}

// Scenarios returns the built-in example problems.
func Scenarios() []Scene {
	square := R(0, 0, 10, 10)
	return []Scene{
		{Name: "diagonal through rect", Segment: Seg(0, 0, 10, 10), Rect: R(2, 2, 8, 8)},
		{Name: "horizontal half inside", Segment: Seg(-5, 5, 5, 5), Rect: square},
		{Name: "beyond bottom-left corner", Segment: Seg(-5, -5, -1, -1), Rect: square},
		{Name: "horizontal spanning rect", Segment: Seg(-5, 5, 15, 5), Rect: square},
		{Name: "diagonal crossing two edges", Segment: Seg(-5, -1, 15, 11), Rect: square},
		{Name: "passing beyond top-left corner", Segment: Seg(-5, 8, 2, 15), Rect: square},
		{Name: "touching top-left corner", Segment: Seg(-5, 5, 5, 15), Rect: square},
		{Name: "left of rect", Segment: Seg(-5, 2, -3, 8), Rect: square},
		{Name: "zero width rect", Segment: Seg(0, 0, 10, 10), Rect: R(5, 0, 5, 10)},
	}
}
