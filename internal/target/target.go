package target

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/containerd/errdefs"
	"github.com/containerd/platforms"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
)

const (
	windows = "windows"
	darwin  = "darwin"
)

// Operating system and architecture an artifact is built for.
type Platform struct {
	spec ocispec.Platform
}

// Parses a platform specifier such as "darwin" or "windows/amd64".
//
// An empty specifier selects the host platform. Specifiers naming only an
// architecture are rejected because the operating system drives every
// convention in this package.
func Parse(specifier string) (Platform, error) {
	if strings.TrimSpace(specifier) == "" {
		return Host(), nil
	}

	spec, err := platforms.Parse(specifier)
	if err != nil {
		return Platform{}, fmt.Errorf("%w: target %q: %v", errdefs.ErrInvalidArgument, specifier, err)
	}
	if spec.OS == "" {
		return Platform{}, fmt.Errorf("%w: target %q names no operating system", errdefs.ErrInvalidArgument, specifier)
	}

	return Platform{spec: platforms.Normalize(spec)}, nil
}

// Returns the host platform.
func Host() Platform {
	return Platform{spec: platforms.DefaultSpec()}
}

// Returns a platform for the given operating system on the host architecture.
func ForOS(os string) Platform {
	spec := platforms.DefaultSpec()
	spec.OS = os
	return Platform{spec: spec}
}

// Returns the operating system (e.g., "darwin").
func (p Platform) OS() string {
	return p.spec.OS
}

// Formats the platform as "os/arch[/variant]".
func (p Platform) String() string {
	return platforms.Format(p.spec)
}

// Reports whether the platform is Windows.
func (p Platform) IsWindows() bool {
	return p.spec.OS == windows
}

// Reports whether the platform is macOS.
func (p Platform) IsDarwin() bool {
	return p.spec.OS == darwin
}

// Reports whether the platform can be built on the current host. The
// bundler only produces artifacts for the system it runs on.
func (p Platform) IsHost() bool {
	return p.spec.OS == runtime.GOOS
}

// Returns the separator between source and destination in the bundler's
// resource mapping argument. The bundler splits the argument on this exact
// character: ";" on Windows, ":" everywhere else.
func (p Platform) DataSeparator() string {
	if p.IsWindows() {
		return ";"
	}
	return ":"
}

// Returns the directory inside an environment that holds its executables.
func (p Platform) ScriptsDir(envDir string) string {
	if p.IsWindows() {
		return filepath.Join(envDir, "Scripts")
	}
	return filepath.Join(envDir, "bin")
}

// Returns the interpreter of the environment rooted at envDir.
func (p Platform) Interpreter(envDir string) string {
	if p.IsWindows() {
		return filepath.Join(p.ScriptsDir(envDir), "python.exe")
	}
	return filepath.Join(p.ScriptsDir(envDir), "python")
}

// Returns the activation script whose presence marks envDir as an existing
// environment.
func (p Platform) ActivationMarker(envDir string) string {
	if p.IsWindows() {
		return filepath.Join(p.ScriptsDir(envDir), "activate.bat")
	}
	return filepath.Join(p.ScriptsDir(envDir), "activate")
}

// Returns the separator used in PATH-like environment variables.
func (p Platform) ListSeparator() string {
	if p.IsWindows() {
		return ";"
	}
	return ":"
}

// Returns the file name the bundler gives a single-file executable.
func (p Platform) ExecutableName(name string) string {
	if p.IsWindows() {
		return name + ".exe"
	}
	return name
}
