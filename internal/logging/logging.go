package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Controls the logger produced by [New].
type Options struct {
	Level   slog.Level // Minimum level to emit.
	Verbose bool       // Show timestamps and source locations.
	Group   string     // Optional group applied to all attributes.
}

// Creates a logger writing to f.
func New(f *os.File, opts Options) *slog.Logger {
	var w io.Writer = f
	color := isTerminal(f)
	if color {
		w = colorable.NewColorable(f)
	}

	var handler slog.Handler = newHandler(w, opts, !color)
	if opts.Group != "" {
		handler = handler.WithGroup(opts.Group)
	}
	return slog.New(handler)
}

// Creates the tint handler. Split from [New] so tests can write to a buffer.
func newHandler(w io.Writer, opts Options, noColor bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      opts.Level,
		AddSource:  opts.Verbose,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !opts.Verbose && len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

// Maps the quiet/debug switches to a level. Debug wins over quiet.
func Level(quiet, debug bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case quiet:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
