package project

import (
	"github.com/musicalloto/lotopack/internal/target"
)

// Name of the optional project configuration file in the project root.
const ConfigFile = "lotopack.yaml"

// Build configuration for a project. Paths are relative to the project root
// unless absolute.
type Config struct {

	// Artifact name. Empty lets the bundler name it after the entry script.
	AppName string `yaml:"appName,omitempty"`

	// Application entry point.
	EntryScript string `yaml:"entryScript" validate:"required"`

	// Icon attached to the artifact.
	IconPath string `yaml:"iconPath" validate:"required"`

	// Directory bundled into the artifact under its own base name.
	ResourceDir string `yaml:"resourceDir" validate:"required"`

	// Root of the isolated Python environment.
	EnvironmentDir string `yaml:"environmentDir" validate:"required"`

	// Packages installed into a newly created environment.
	Dependencies []string `yaml:"dependencies,omitempty" validate:"dive,required"`

	// Create the environment when it does not exist yet.
	Provision bool `yaml:"provision"`

	// Remove previous build output before bundling.
	Clean bool `yaml:"clean"`

	// Paths or glob patterns, relative to the root, removed by the cleaner.
	CleanTargets []string `yaml:"cleanTargets,omitempty" validate:"dive,required"`

	// Directory the finished artifact is copied to. Empty disables publishing.
	PublishDir string `yaml:"publishDir,omitempty"`
}

// Returns the built-in profile for the given platform.
//
// Both profiles agree on the entry script, resource directory and
// environment directory. The macOS profile provisions a missing environment,
// cleans previous output and names the artifact explicitly. The Windows
// profile expects an existing environment, builds over previous output, and
// lets the bundler name the artifact after the entry script. Other unix
// platforms follow the macOS profile.
func Defaults(p target.Platform) Config {
	cfg := Config{
		EntryScript:    "app.py",
		IconPath:       "resources/icon.ico",
		ResourceDir:    "resources",
		EnvironmentDir: "venv",
		Dependencies:   []string{"pyinstaller", "PyQt6"},
		CleanTargets:   []string{"build", "dist", "*.spec"},
	}

	if p.IsWindows() {
		return cfg
	}

	cfg.AppName = "MusicalLoto"
	cfg.Provision = true
	cfg.Clean = true
	return cfg
}
