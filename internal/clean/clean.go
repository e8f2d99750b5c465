package clean

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hashicorp/go-multierror"
)

// Characters that make a target a pattern rather than a path.
const globMeta = "*?[{"

// Removes every target under root and returns the paths that were deleted.
//
// The returned error aggregates every failure; paths that could be removed
// are removed regardless. Callers treat the error as a warning.
func Run(root string, targets []string) ([]string, error) {
	var removed []string
	var errs *multierror.Error

	for _, t := range targets {
		matches, err := expand(root, t)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		for _, path := range matches {
			if !within(root, path) {
				errs = multierror.Append(errs, fmt.Errorf("refusing to remove %s outside %s", path, root))
				continue
			}
			if _, err := os.Lstat(path); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err := os.RemoveAll(path); err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			slog.Debug("removed", "path", path)
			removed = append(removed, path)
		}
	}

	return removed, errs.ErrorOrNil()
}

// Runs [Run] and logs failures instead of returning them.
func BestEffort(root string, targets []string) []string {
	removed, err := Run(root, targets)
	if err != nil {
		slog.Warn("cleanup incomplete", "root", root, "error", err)
	}
	return removed
}

// Returns the paths a target refers to.
func expand(root, target string) ([]string, error) {
	if !strings.ContainsAny(target, globMeta) {
		return []string{filepath.Join(root, filepath.FromSlash(target))}, nil
	}

	g, err := glob.Compile(filepath.ToSlash(target), '/')
	if err != nil {
		return nil, fmt.Errorf("invalid clean pattern %q: %w", target, err)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var matches []string
	for _, e := range entries {
		if g.Match(e.Name()) {
			matches = append(matches, filepath.Join(root, e.Name()))
		}
	}
	return matches, nil
}

// Reports whether path is strictly inside root.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
