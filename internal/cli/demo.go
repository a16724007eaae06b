package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

func (a *app) demoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Pick a built-in scenario and print how it is solved",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			scenes := geom.Scenarios()
			names := make([]string, len(scenes))
			for i, sc := range scenes {
				names[i] = sc.Name
			}
			prompt := promptui.Select{
				Label: "Select Scenario",
				Items: names,
				Size:  len(names),
			}
			i, _, err := prompt.Run()
			if err != nil {
				return errors.Wrap(err, "prompt failed")
			}
			return explain(cmd.Root().Writer, scenes[i])
		},
	}
}

// explain prints a scenario, the zones of its endpoints and its answer.
func explain(w io.Writer, sc geom.Scene) error {
	res := proximal.Closest(sc.Segment, sc.Rect)
	_, err := fmt.Fprintf(w,
		"scenario: %s\nsegment:  %s\nrect:     %s\nzones:    %s, %s\nclosest:  %s\n",
		sc.Name,
		geom.SegmentWKT(sc.Segment),
		geom.RectWKT(sc.Rect),
		proximal.Classify(sc.Segment.P0, sc.Rect),
		proximal.Classify(sc.Segment.P1, sc.Rect),
		formatText(res),
	)
	return errors.Wrap(err, "could not write scenario")
}
