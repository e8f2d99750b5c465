package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/musicalloto/lotopack/internal/target"
)

const (

	// Output directory for finished artifacts, relative to the root.
	distDir = "dist"

	// Bundler scratch directory, relative to the root.
	workDir = "build"
)

// Absolute paths of everything a build touches.
type Layout struct {
	Root           string // Project root.
	EntryScript    string // Application entry point.
	ResourceDir    string // Resource directory bundled into the artifact.
	IconPath       string // Icon attached to the artifact.
	EnvironmentDir string // Isolated Python environment.
	Interpreter    string // Interpreter inside the environment.
	DistDir        string // Conventional output directory.
	WorkDir        string // Bundler work directory.
}

// Resolves the configuration against root.
//
// Relative configuration paths are joined to root; absolute ones are kept.
// Resolution never fails and does not touch the filesystem. Whether the
// paths exist is for later steps to find out.
func Resolve(root string, cfg Config, p target.Platform) Layout {
	root = filepath.Clean(root)
	env := join(root, cfg.EnvironmentDir)

	return Layout{
		Root:           root,
		EntryScript:    join(root, cfg.EntryScript),
		ResourceDir:    join(root, cfg.ResourceDir),
		IconPath:       join(root, cfg.IconPath),
		EnvironmentDir: env,
		Interpreter:    p.Interpreter(env),
		DistDir:        filepath.Join(root, distDir),
		WorkDir:        filepath.Join(root, workDir),
	}
}

// Returns a copy of the layout using interpreter instead of the
// environment's own. Relative paths are resolved against the root.
func (l Layout) WithInterpreter(interpreter string) Layout {
	l.Interpreter = join(l.Root, interpreter)
	return l
}

// Returns the project root for a driver binary located at executable.
//
// The driver lives in a directory directly below the project root (for
// example <root>/tools/lotopack), so the root is the parent of the binary's
// directory. Symlinks are resolved first so a linked driver still finds its
// own project.
func DriverRoot(executable string) (string, error) {
	resolved, err := filepath.EvalSymlinks(executable)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDriverLookup, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDriverLookup, err)
	}

	return filepath.Dir(filepath.Dir(abs)), nil
}

// Returns the project root for the running driver.
func CurrentDriverRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDriverLookup, err)
	}
	return DriverRoot(exe)
}

func join(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}
