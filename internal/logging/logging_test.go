package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name  string
		quiet bool
		debug bool
		want  slog.Level
	}{
		{name: "default", want: slog.LevelInfo},
		{name: "quiet", quiet: true, want: slog.LevelWarn},
		{name: "debug", debug: true, want: slog.LevelDebug},
		{name: "debug wins", quiet: true, debug: true, want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Level(tt.quiet, tt.debug); got != tt.want {
				t.Fatalf("Level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, Options{Level: slog.LevelWarn}, true))

	logger.Info("hidden")
	logger.Warn("shown", "step", "bundle")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record emitted at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "step=bundle") {
		t.Fatalf("output = %q, want warn record with attribute", out)
	}
}

func TestHandlerOmitsTimeUnlessVerbose(t *testing.T) {
	var quiet, verbose bytes.Buffer

	slog.New(newHandler(&quiet, Options{Level: slog.LevelInfo}, true)).Info("msg")
	slog.New(newHandler(&verbose, Options{Level: slog.LevelInfo, Verbose: true}, true)).Info("msg")

	if strings.Count(quiet.String(), ":") != 0 {
		t.Fatalf("non-verbose output contains a timestamp: %q", quiet.String())
	}
	if len(verbose.String()) <= len(quiet.String()) {
		t.Fatalf("verbose output %q not longer than %q", verbose.String(), quiet.String())
	}
}
