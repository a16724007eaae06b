package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
)

// Setup installs the default slog logger. With an empty path records go to
// w; otherwise they are appended to the file at path. The returned func
// closes the file, if any.
func Setup(level slog.Level, path string, w io.Writer) (func() error, error) {
	closer := func() error { return nil }
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closer, errors.Wrap(err, "could not open log file")
		}
		w, closer = f, f.Close
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closer, nil
}

func Loge(e error) {
	if e != nil {
		slog.Error("", "error", e)
	}
}

func Logwe(e error) {
	if e != nil {
		slog.Warn("", "error", e)
	}
}

func Logde(e error) {
	if e != nil {
		slog.Debug("", "error", e)
	}
}
