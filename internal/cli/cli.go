// Package cli wires the solver, the interactive view and the batch tools
// behind one command line.
package cli

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"proximal/internal/geom"
	"proximal/internal/logging"
	"proximal/internal/settings"
	"proximal/internal/tui"
)

// app is the state shared by every command of one run.
type app struct {
	configPath string
	settings   settings.Settings
	closeLog   func() error
}

// New returns the root command. Output goes to out and logs to errOut.
func New(out, errOut io.Writer) *cli.Command {
	a := &app{closeLog: func() error { return nil }}
	return &cli.Command{
		Name:      "proximal",
		Usage:     "Find the part of a line segment closest to a rectangle",
		ArgsUsage: "[scene file]",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Settings file",
				Value:   settings.DefaultPath,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			a.configPath = cmd.String("config")
			s, err := settings.Load(a.configPath)
			if err != nil {
				return ctx, err
			}
			a.settings = s
			a.closeLog, err = logging.Setup(s.Level(), s.LogFile, errOut)
			return ctx, err
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return a.closeLog()
		},
		Commands: []*cli.Command{
			a.solveCommand(),
			a.batchCommand(),
			a.benchCommand(),
			a.renderCommand(),
			a.demoCommand(),
			a.configCommand(),
		},
		Action: a.runTUI,
	}
}

// Run parses args and runs the matching command.
func Run(ctx context.Context, args []string) error {
	return New(os.Stdout, os.Stderr).Run(ctx, args)
}

func (a *app) runTUI(ctx context.Context, cmd *cli.Command) error {
	// the alternate screen owns the terminal, so logs go to the file or nowhere
	if a.settings.LogFile == "" {
		if _, err := logging.Setup(a.settings.Level(), "", io.Discard); err != nil {
			return err
		}
	}
	m := tui.New(a.settings, a.configPath)
	if path := cmd.Args().First(); path != "" {
		sc, err := geom.LoadScene(path)
		if err != nil {
			return err
		}
		m = tui.NewWithScene(a.settings, a.configPath, sc)
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx)).Run()
	return errors.Wrap(err, "interactive view failed")
}

// defaultRect is the rect the interactive view starts with.
func (a *app) defaultRect() geom.Rect {
	h := a.settings.RectHalfSize
	return geom.R(-h, -h, h, h)
}
