package runnertest

import (
	"os"
	"path/filepath"

	"github.com/musicalloto/lotopack/internal/runner"
	"github.com/musicalloto/lotopack/internal/target"
)

// Reports whether cmd is "python -m venv DIR".
func IsVenv(cmd runner.Command) bool {
	return hasPrefix(cmd.Args, []string{"-m", "venv"}) && len(cmd.Args) == 3
}

// Simulates "python -m venv DIR" by creating the interpreter and the
// activation script for platform p. Other commands are ignored.
func CreateEnvironment(p target.Platform, cmd runner.Command) error {
	if !IsVenv(cmd) {
		return nil
	}
	root := cmd.Args[2]
	for _, f := range []string{p.Interpreter(root), p.ActivationMarker(root)} {
		if err := os.MkdirAll(filepath.Dir(f), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(f, nil, 0o755); err != nil {
			return err
		}
	}
	return nil
}
