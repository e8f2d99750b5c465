package toolchain

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/kluctl/go-embed-python/python"
)

// Oldest interpreter the bundler supports.
var minimumPythonVersion = semver.MustParse("3.8.0")

// Finds the interpreter new environments are created from.
type BaseLocator func(ctx context.Context) (string, error)

// Locates python3 (python.exe on Windows) on PATH and checks its version.
func SystemPython(ctx context.Context) (string, error) {
	py := python.NewPython()

	exe, err := py.GetExePath()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBasePythonMissing, err)
	}

	cmd, err := py.PythonCmd("-c", `import platform; print(platform.python_version())`)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBasePythonMissing, err)
	}
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrBasePythonMissing, exe, err)
	}

	if err := checkVersion(string(out)); err != nil {
		return "", fmt.Errorf("%s: %w", exe, err)
	}
	return exe, nil
}

// Checks the output of platform.python_version() against the minimum.
func checkVersion(out string) error {
	v, err := semver.NewVersion(strings.TrimSpace(out))
	if err != nil {
		return fmt.Errorf("%w: failed to parse python version %q: %w", ErrBasePythonMissing, strings.TrimSpace(out), err)
	}
	if v.LessThan(minimumPythonVersion) {
		return fmt.Errorf("%w: python version (%s) must be at least %s", ErrBasePythonTooOld, v, minimumPythonVersion)
	}
	return nil
}
