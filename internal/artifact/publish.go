package artifact

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"

	"github.com/musicalloto/lotopack/internal/paths"
)

// Copies the artifact into dir and returns the published path.
//
// An existing copy with the same name is replaced. Symlinks inside bundles
// are copied as links so framework layouts stay intact.
func Publish(a *Artifact, dir string) (string, error) {
	if err := os.MkdirAll(dir, paths.DefaultDirMode); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}

	dest := filepath.Join(dir, filepath.Base(a.Path))
	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}

	err := cp.Copy(a.Path, dest, cp.Options{
		OnSymlink: func(string) cp.SymlinkAction {
			return cp.Shallow
		},
		PreserveTimes: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPublish, err)
	}

	slog.Info("artifact published", "path", dest)
	return dest, nil
}
