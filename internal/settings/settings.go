package settings

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

const DefaultPath = "proximal.json"

type Settings struct {
	RectHalfSize   float64 `json:"rect_half_size"`
	CanvasSize     float64 `json:"canvas_size"`
	SnapToAxis     bool    `json:"snap_to_axis"`
	LogLevel       string  `json:"log_level"`
	LogFile        string  `json:"log_file"`
	BenchLines     int     `json:"bench_lines"`
	BenchCanvasMin int     `json:"bench_canvas_min"`
	BenchCanvasMax int     `json:"bench_canvas_max"`
	BenchStep      int     `json:"bench_step"`
	BenchSeed      uint64  `json:"bench_seed"`
	RenderWidth    int     `json:"render_width"`
	RenderHeight   int     `json:"render_height"`
}

// Default returns the settings used when no file exists. The rectangle spans
// a third of the canvas, centred on the origin.
func Default() Settings {
	s := Settings{}
	s.CanvasSize = 900
	s.RectHalfSize = s.CanvasSize / 3 / 2
	s.SnapToAxis = false
	s.LogLevel = "error"
	s.LogFile = ""
	s.BenchLines = 30000
	s.BenchCanvasMin = 100
	s.BenchCanvasMax = 1000
	s.BenchStep = 100
	s.BenchSeed = 1
	s.RenderWidth = 900
	s.RenderHeight = 900
	return s
}

// Load reads settings from path. Fields missing from the file keep their
// defaults, and a missing file yields Default with no error.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("settings file not found, using defaults", "path", path)
		return s, nil
	}
	if err != nil {
		return s, errors.Wrap(err, "could not read settings")
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), errors.Wrapf(err, "could not parse settings %s", path)
	}
	if err := s.Validate(); err != nil {
		return Default(), errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

func (s Settings) Validate() error {
	switch {
	case s.RectHalfSize < 0:
		return errors.Errorf("rect_half_size must not be negative, got %g", s.RectHalfSize)
	case s.CanvasSize <= 0:
		return errors.Errorf("canvas_size must be positive, got %g", s.CanvasSize)
	case s.BenchLines <= 0:
		return errors.Errorf("bench_lines must be positive, got %d", s.BenchLines)
	case s.BenchCanvasMin <= 0 || s.BenchCanvasMax < s.BenchCanvasMin:
		return errors.Errorf("bench canvas range [%d, %d] is invalid", s.BenchCanvasMin, s.BenchCanvasMax)
	case s.BenchStep <= 0:
		return errors.Errorf("bench_step must be positive, got %d", s.BenchStep)
	case s.RenderWidth <= 0 || s.RenderHeight <= 0:
		return errors.Errorf("render size %dx%d is invalid", s.RenderWidth, s.RenderHeight)
	}
	return nil
}

func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not marshal settings")
	}
	return writeFileLocked(path, append(data, '\n'))
}

// Level maps LogLevel onto a slog level; unknown names mean error.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(s.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
