package cli

import (
	"context"
	"log/slog"

	"github.com/musicalloto/lotopack/internal/pipeline"
)

// Represents the 'lotopack build' command.
type BuildCmd struct {
	Python  string `help:"Use this interpreter instead of the project environment." placeholder:"PATH" type:"path" env:"LOTOPACK_PYTHON"`
	NoClean bool   `help:"Keep output of previous builds."`
	Report  string `help:"Also write a YAML build report to FILE." placeholder:"FILE" type:"path"`
}

// Executes the build command.
//
// Runs the full pipeline: resolve paths, prepare the environment, clean,
// bundle and report. An external tool's exit code survives in the returned
// error.
func (c *BuildCmd) Run(ctx context.Context) error {
	root, p, cfg, err := loadProject()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(ctx, pipeline.Options{
		Root:        root,
		Platform:    p,
		Config:      cfg,
		Interpreter: c.Python,
		NoClean:     c.NoClean,
		ReportPath:  c.Report,
	})
	if err != nil {
		return err
	}

	slog.Debug("build finished", "run", result.RunID, "state", result.State)
	return nil
}
