// Package bench measures how many closest-approach queries per second the
// solver answers for random segments on canvases of growing size.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"proximal/internal/geom"
	"proximal/internal/proximal"
)

type Config struct {
	Lines     int
	CanvasMin int
	CanvasMax int
	Step      int
	Seed      uint64
}

func (c Config) Validate() error {
	if c.Lines <= 0 {
		return errors.Errorf("lines must be positive, got %d", c.Lines)
	}
	if c.CanvasMin <= 0 || c.CanvasMax < c.CanvasMin {
		return errors.Errorf("canvas range [%d, %d] is invalid", c.CanvasMin, c.CanvasMax)
	}
	if c.Step <= 0 {
		return errors.Errorf("step must be positive, got %d", c.Step)
	}
	return nil
}

// Round is the timing of one canvas size.
type Round struct {
	CanvasSize int
	Rect       geom.Rect
	Lines      int
	Points     int
	Elapsed    time.Duration
}

// PerSec is calls per second rounded to the nearest thousand.
func (r Round) PerSec() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return math.Round(float64(r.Lines)/r.Elapsed.Seconds()/1000) * 1000
}

// CenteredRect is the CanvasMin-sized square centred in a canvas of size.
func CenteredRect(size, canvasMin int) geom.Rect {
	lo := float64(size-canvasMin) / 2
	hi := lo + float64(canvasMin)
	return geom.R(lo, lo, hi, hi)
}

// RandomSegments returns n segments with endpoints uniform in [0, size)².
func RandomSegments(rng *rand.Rand, n int, size float64) []geom.Segment {
	segs := make([]geom.Segment, n)
	for i := range segs {
		segs[i] = geom.Seg(rng.Float64()*size, rng.Float64()*size, rng.Float64()*size, rng.Float64()*size)
	}
	return segs
}

// Run times every canvas size in turn. Segments are generated before the
// clock starts. Cancelling ctx stops between rounds and returns the rounds
// completed so far with the context error.
func Run(ctx context.Context, cfg Config) ([]Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	var rounds []Round
	for size := cfg.CanvasMin; size <= cfg.CanvasMax; size += cfg.Step {
		if err := ctx.Err(); err != nil {
			return rounds, err
		}
		rect := CenteredRect(size, cfg.CanvasMin)
		segs := RandomSegments(rng, cfg.Lines, float64(size))

		points := 0
		start := time.Now()
		for _, s := range segs {
			if proximal.Closest(s, rect).Kind == geom.KindPoint {
				points++
			}
		}
		r := Round{CanvasSize: size, Rect: rect, Lines: cfg.Lines, Points: points, Elapsed: time.Since(start)}
		slog.Info("bench round",
			"canvas", size,
			"lines", r.Lines,
			"points", r.Points,
			"elapsed", r.Elapsed,
			"per_sec", r.PerSec(),
		)
		rounds = append(rounds, r)
	}
	return rounds, nil
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// Report renders rounds as a table.
func Report(lines int, rounds []Round) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("canvas", "elapsed", "per sec.", "points").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle.Align(lipgloss.Right)
		})
	for _, r := range rounds {
		t.Row(
			fmt.Sprintf("%dx%d", r.CanvasSize, r.CanvasSize),
			fmt.Sprintf("%.3fs", r.Elapsed.Seconds()),
			formatThousands(int64(r.PerSec())),
			strconv.Itoa(r.Points),
		)
	}
	return fmt.Sprintf("%s lines per iteration:\n%s", formatThousands(int64(lines)), t.String())
}

var printer = message.NewPrinter(language.English)

func formatThousands(n int64) string {
	return printer.Sprintf("%d", n)
}
