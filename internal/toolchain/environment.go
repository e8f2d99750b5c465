package toolchain

import (
	"os"
	"path/filepath"

	"github.com/musicalloto/lotopack/internal/paths"
	"github.com/musicalloto/lotopack/internal/target"
)

// An isolated Python environment on disk.
type Environment struct {
	RootDir     string // Environment root directory.
	Interpreter string // Interpreter used for every command in the environment.
	Explicit    bool   // Interpreter was chosen by the user instead of derived from RootDir.
}

// Result of inspecting an [Environment]. Either [Ready] or [NeedsProvisioning].
type State interface {
	state()
}

// An environment that can be used as is.
type Ready struct {
	RootDir     string // Environment root. Empty when only an interpreter is known.
	Interpreter string // Interpreter to run build tools with.
}

// An environment that has to be created before use.
type NeedsProvisioning struct {
	RootDir     string // Where the environment should be created.
	Interpreter string // Interpreter the environment is expected to provide.
	Explicit    bool   // A user-chosen interpreter that does not exist.
}

func (Ready) state()             {}
func (NeedsProvisioning) state() {}

// Inspects the environment.
//
// An explicit interpreter is ready when the file exists; the environment
// directory is then not inspected at all. Otherwise the environment is ready
// when its activation marker exists.
func Detect(env Environment, p target.Platform) State {
	if env.Explicit {
		if exists(env.Interpreter) {
			return Ready{Interpreter: env.Interpreter}
		}
		return NeedsProvisioning{RootDir: env.RootDir, Interpreter: env.Interpreter, Explicit: true}
	}

	if exists(p.ActivationMarker(env.RootDir)) {
		return Ready{RootDir: env.RootDir, Interpreter: env.Interpreter}
	}
	return NeedsProvisioning{RootDir: env.RootDir, Interpreter: env.Interpreter}
}

// Returns the environment variable overrides that activate the environment
// for a child process.
//
// The interpreter's directory is put first on PATH, so console scripts
// installed into the environment win over system ones. VIRTUAL_ENV is set
// when the environment root is known, PYTHONHOME is removed because it
// breaks virtual environments, and pip shares one download cache across all
// environments.
func (r Ready) Activate(p target.Platform) []string {
	bin := filepath.Dir(r.Interpreter)

	path := bin
	if current := os.Getenv("PATH"); current != "" {
		path += p.ListSeparator() + current
	}

	env := []string{
		"PATH=" + path,
		"PYTHONHOME=",
		"PIP_CACHE_DIR=" + paths.PipCache(),
		"PIP_DISABLE_PIP_VERSION_CHECK=1",
	}
	if r.RootDir != "" {
		env = append(env, "VIRTUAL_ENV="+r.RootDir)
	}
	return env
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
