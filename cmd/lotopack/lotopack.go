package main

import (
	"log/slog"
	"os"

	"github.com/musicalloto/lotopack/internal"
	"github.com/musicalloto/lotopack/internal/cli"
	"github.com/musicalloto/lotopack/internal/logging"
	"github.com/musicalloto/lotopack/internal/runner"
)

// The entry point for the lotopack driver.
//
// Initializes logging, displays startup information, and executes the root
// command. If a build tool failed, its exit code becomes the driver's exit
// code; any other error exits with 1.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("lotopack is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(runner.ExitCode(err))
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is replaced after flag parsing via cli.Execute.
func logger() *slog.Logger {
	return logging.New(os.Stderr, logging.Options{
		Level:   logging.Level(internal.IsQuiet(), internal.IsDebug()),
		Verbose: internal.IsVerbose(),
	})
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
