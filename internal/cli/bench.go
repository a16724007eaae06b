package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"proximal/internal/bench"
	"proximal/internal/proximal"
	"proximal/internal/render"
)

func (a *app) benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Time the solver on random segments over growing canvases",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "lines", Aliases: []string{"n"}, Usage: "Segments per canvas size (default from settings)"},
			&cli.IntFlag{Name: "min", Usage: "Smallest canvas, also the rect size (default from settings)"},
			&cli.IntFlag{Name: "max", Usage: "Largest canvas (default from settings)"},
			&cli.IntFlag{Name: "step", Usage: "Canvas size increment (default from settings)"},
			&cli.Uint64Flag{Name: "seed", Usage: "Random seed (default from settings)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := a.benchConfig(cmd)
			rounds, err := bench.Run(ctx, cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, bench.Report(cfg.Lines, rounds))
			return err
		},
	}
}

// benchConfig takes each value from its flag when set and from the settings
// otherwise.
func (a *app) benchConfig(cmd *cli.Command) bench.Config {
	s := a.settings
	cfg := bench.Config{
		Lines:     s.BenchLines,
		CanvasMin: s.BenchCanvasMin,
		CanvasMax: s.BenchCanvasMax,
		Step:      s.BenchStep,
		Seed:      s.BenchSeed,
	}
	if cmd.IsSet("lines") {
		cfg.Lines = cmd.Int("lines")
	}
	if cmd.IsSet("min") {
		cfg.CanvasMin = cmd.Int("min")
	}
	if cmd.IsSet("max") {
		cfg.CanvasMax = cmd.Int("max")
	}
	if cmd.IsSet("step") {
		cfg.Step = cmd.Int("step")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.Uint64("seed")
	}
	return cfg
}

func (a *app) renderCommand() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Draw a scene and its answer into a PNG image",
		Flags: append(sceneFlags(),
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "PNG file to write", Value: "proximal.png"},
			&cli.IntFlag{Name: "width", Usage: "Image width (default from settings)"},
			&cli.IntFlag{Name: "height", Usage: "Image height (default from settings)"},
		),
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

			w, h := a.settings.RenderWidth, a.settings.RenderHeight
			if cmd.IsSet("width") {
				w = cmd.Int("width")
			}
			if cmd.IsSet("height") {
				h = cmd.Int("height")
			}
			path := cmd.String("output")
			if err := render.Save(path, sc, w, h); err != nil {
				return err
			}
			slog.Info("rendered", "path", path, "width", w, "height", h, "kind", res.Kind)
			_, err = fmt.Fprintf(cmd.Root().Writer, "%s -> %s\n", formatText(res), path)
			return err
		},
	}
}
