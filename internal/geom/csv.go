package geom

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// BatchColumns is the column order of batch input files.
var BatchColumns = []string{"x0", "y0", "x1", "y1", "xmin", "ymin", "xmax", "ymax"}

// ReadBatchCSV reads one scene per row. A header row naming the columns in
// BatchColumns (case-insensitive, any order) is optional; without one the
// columns are positional.
func ReadBatchCSV(r io.Reader) ([]Scene, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "could not read batch csv")
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}

	idx := []int{0, 1, 2, 3, 4, 5, 6, 7}
	start := 0
	if _, err := strconv.ParseFloat(strings.TrimSpace(recs[0][0]), 64); err != nil {
		idx, err = headerIndex(recs[0])
		if err != nil {
			return nil, err
		}
		start = 1
	}

	var scenes []Scene
	for n, row := range recs[start:] {
		var v [8]float64
		for i, col := range idx {
			if col >= len(row) {
				return nil, errors.Errorf("csv row %d: missing column %s", n+start+1, BatchColumns[i])
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "csv row %d: column %s", n+start+1, BatchColumns[i])
			}
			v[i] = f
		}
		scenes = append(scenes, Scene{
			Segment: Seg(v[0], v[1], v[2], v[3]),
			Rect:    R(v[4], v[5], v[6], v[7]),
		})
	}
	if len(scenes) == 0 {
		return nil, errors.New("csv: no rows")
	}
	return scenes, nil
}

func headerIndex(header []string) ([]int, error) {
	pos := map[string]int{}
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	idx := make([]int, len(BatchColumns))
	for i, name := range BatchColumns {
		p, ok := pos[name]
		if !ok {
			return nil, errors.Errorf("csv: column %s not found", name)
		}
		idx[i] = p
	}
	return idx, nil
}

// WriteBatchCSV writes kind,x0,y0,x1,y1 per result. Point results repeat
// their coordinate in x1,y1.
func WriteBatchCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"kind", "x0", "y0", "x1", "y1"}); err != nil {
		return errors.Wrap(err, "could not write csv header")
	}
	ff := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	for _, r := range results {
		rec := []string{r.Kind.String(), ff(r.P0.X), ff(r.P0.Y), ff(r.P1.X), ff(r.P1.Y)}
		if err := cw.Write(rec); err != nil {
			return errors.Wrap(err, "could not write csv row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "could not flush csv")
}
