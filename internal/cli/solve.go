package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

var (
	segmentFlags = []string{"x0", "y0", "x1", "y1"}
	rectFlags    = []string{"xmin", "ymin", "xmax", "ymax"}
)

// sceneFlags selects the problem to solve: a scene file, a built-in scenario,
// or explicit coordinates in numbers or WKT.
func sceneFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{Category: "Scene", Name: "input", Aliases: []string{"i"}, Usage: "Scene file (.wkt, .geojson or .csv)"},
		&cli.StringFlag{Category: "Scene", Name: "scenario", Aliases: []string{"s"}, Usage: "Built-in scenario, by number or name"},
		&cli.StringFlag{Category: "Segment", Name: "wkt-segment", Usage: "Segment as a two point LINESTRING"},
		&cli.StringFlag{Category: "Rectangle", Name: "wkt-rect", Usage: "Rectangle as any WKT geometry; its bounding box is used"},
	}
	for _, n := range segmentFlags {
		flags = append(flags, &cli.Float64Flag{Category: "Segment", Name: n, Usage: "Segment coordinate " + n})
	}
	for _, n := range rectFlags {
		flags = append(flags, &cli.Float64Flag{Category: "Rectangle", Name: n, Usage: "Rectangle bound " + n})
	}
	return flags
}

// sceneFromFlags builds the scene named by the flags. Without rect flags the
// rect from the settings is used.
func (a *app) sceneFromFlags(cmd *cli.Command) (geom.Scene, error) {
	if path := cmd.String("input"); path != "" {
		return geom.LoadScene(path)
	}
	if name := cmd.String("scenario"); name != "" {
		return findScenario(name)
	}

	sc := geom.Scene{Name: "cli", Rect: a.defaultRect()}
	switch {
	case cmd.IsSet("wkt-segment"):
		seg, err := geom.ParseSegmentWKT(cmd.String("wkt-segment"))
		if err != nil {
			return sc, err
		}
		sc.Segment = seg
	case anySet(cmd, segmentFlags):
		if err := requireAll(cmd, segmentFlags); err != nil {
			return sc, err
		}
		sc.Segment = geom.Seg(cmd.Float64("x0"), cmd.Float64("y0"), cmd.Float64("x1"), cmd.Float64("y1"))
	default:
		return sc, errors.New("no segment given: use --x0..--y1, --wkt-segment, --input or --scenario")
	}
	switch {
	case cmd.IsSet("wkt-rect"):
		r, err := geom.ParseRectWKT(cmd.String("wkt-rect"))
		if err != nil {
			return sc, err
		}
		sc.Rect = r
	case anySet(cmd, rectFlags):
		if err := requireAll(cmd, rectFlags); err != nil {
			return sc, err
		}
		sc.Rect = geom.R(cmd.Float64("xmin"), cmd.Float64("ymin"), cmd.Float64("xmax"), cmd.Float64("ymax"))
	}
	return sc, nil
}

func anySet(cmd *cli.Command, names []string) bool {
	for _, n := range names {
		if cmd.IsSet(n) {
			return true
		}
	}
	return false
}

// requireAll fails when any of names was left out.
func requireAll(cmd *cli.Command, names []string) error {
	var missing []string
	for _, n := range names {
		if !cmd.IsSet(n) {
			missing = append(missing, "--"+n)
		}
	}
	if len(missing) > 0 {
		return errors.Errorf("missing %s: give all of --%s", strings.Join(missing, ", "), strings.Join(names, ", --"))
	}
	return nil
}

// findScenario looks a built-in scenario up by 1-based number or by name.
func findScenario(name string) (geom.Scene, error) {
	scenes := geom.Scenarios()
	if i, err := strconv.Atoi(name); err == nil {
		if i < 1 || i > len(scenes) {
			return geom.Scene{}, errors.Errorf("scenario %d out of range 1..%d", i, len(scenes))
		}
		return scenes[i-1], nil
	}
	for _, sc := range scenes {
		if strings.EqualFold(sc.Name, name) {
			return sc, nil
		}
	}
	return geom.Scene{}, errors.Errorf("unknown scenario %q", name)
}

func (a *app) solveCommand() *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Print the closest point or sub-segment of one segment",
		Flags: append(sceneFlags(), &cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format: text, wkt or geojson",
			Value:   "text",
		}),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sc, err := a.sceneFromFlags(cmd)
			if err != nil {
				return err
			}
			res, err := proximal.ClosestChecked(sc.Segment, sc.Rect)
			if err != nil {
				return err
			}
			sc.Result = &res
			return writeResult(cmd.Root().Writer, cmd.String("format"), sc)
		},
	}
}

// writeResult prints sc.Result in the given format.
func writeResult(w io.Writer, format string, sc geom.Scene) error {
	var out string
	switch format {
	case "text":
		out = formatText(*sc.Result)
	case "wkt":
		out = geom.ResultWKT(*sc.Result)
	case "geojson":
		data, err := geom.MarshalScenes([]geom.Scene{sc})
		if err != nil {
			return err
		}
		out = string(data)
	default:
		return errors.Errorf("unknown format %q", format)
	}
	_, err := fmt.Fprintln(w, out)
	return errors.Wrap(err, "could not write result")
}

// formatText is the kind followed by the coordinates, e.g. "point 0 10".
func formatText(r geom.Result) string {
	parts := []string{r.Kind.String()}
	for _, c := range r.Coords() {
		parts = append(parts, strconv.FormatFloat(c, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}
