package cli

import (
	"context"
	"log/slog"

	"github.com/musicalloto/lotopack/internal/clean"
)

// Represents the 'lotopack clean' command.
type CleanCmd struct{}

// Executes the clean command.
//
// Unlike the cleaning step of a build, failures are returned.
func (c *CleanCmd) Run(ctx context.Context) error {
	root, _, cfg, err := loadProject()
	if err != nil {
		return err
	}

	removed, err := clean.Run(root, cfg.CleanTargets)
	for _, path := range removed {
		slog.Info("removed", "path", path)
	}
	return err
}
