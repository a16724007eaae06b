package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

func (a *app) batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Solve every row of a CSV file (x0,y0,x1,y1,xmin,ymin,xmax,ymax)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "CSV file, - for stdin", Value: "-"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file, - for stdout", Value: "-"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: csv or geojson", Value: "csv"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			in := cmd.Root().Reader
			if path := cmd.String("input"); path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return errors.Wrap(err, "could not open input")
				}
				defer f.Close()
				in = f
			}
			if in == nil {
				in = os.Stdin
			}
			path := cmd.String("output")
			if path == "-" {
				return batch(in, cmd.Root().Writer, cmd.String("format"))
			}
			return batchToFile(in, path, cmd.String("format"))
		},
	}
}

// batchToFile runs batch into a new file at path. A failed close is an
// error: the last write may not have reached the disk.
func batchToFile(in io.Reader, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create output")
	}
	if err := batch(in, f, format); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "could not close output")
}

// batch solves every scene read from in and writes the answers to out.
func batch(in io.Reader, out io.Writer, format string) error {
	if format != "csv" && format != "geojson" {
		return errors.Errorf("unknown format %q", format)
	}
	scenes, err := geom.ReadBatchCSV(in)
	if err != nil {
		return err
	}
	results := make([]geom.Result, len(scenes))
	for i := range scenes {
		res, err := proximal.ClosestChecked(scenes[i].Segment, scenes[i].Rect)
		if err != nil {
			return errors.Wrapf(err, "row %d", i+1)
		}
		results[i] = res
		scenes[i].Result = &results[i]
		if scenes[i].Name == "" {
			scenes[i].Name = fmt.Sprintf("row %d", i+1)
		}
	}
	slog.Info("batch solved", "rows", len(scenes), "format", format)

	if format == "csv" {
		return geom.WriteBatchCSV(out, results)
	}
	data, err := geom.MarshalScenes(scenes)
	if err != nil {
		return err
	}
	_, err = out.Write(append(data, '\n'))
	return errors.Wrap(err, "could not write output")
}
