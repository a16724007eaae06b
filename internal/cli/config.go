package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"proximal/internal/settings"
)

func (a *app) configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective settings",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := json.MarshalIndent(a.settings, "", "  ")
			if err != nil {
				return errors.Wrap(err, "could not encode settings")
			}
			_, err = fmt.Fprintln(cmd.Root().Writer, string(data))
			return err
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the default settings to the settings file",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if _, err := os.Stat(a.configPath); err == nil && !cmd.Bool("force") {
						return errors.Errorf("%s already exists, use --force to overwrite", a.configPath)
					}
					if err := settings.Default().Save(a.configPath); err != nil {
						return err
					}
					_, err := fmt.Fprintf(cmd.Root().Writer, "wrote %s\n", a.configPath)
					return err
				},
			},
		},
	}
}
