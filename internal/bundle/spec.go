package bundle

import (
	"path/filepath"

	"github.com/musicalloto/lotopack/internal/project"
	"github.com/musicalloto/lotopack/internal/target"
)

// Source directory and its destination inside the artifact.
type Mapping struct {
	Source string
	Dest   string
}

// Formats the mapping as the bundler's --add-data argument.
func (m Mapping) Format(sep string) string {
	return m.Source + sep + m.Dest
}

// Complete option set for one bundler run.
type Spec struct {
	OneFile    bool    // Produce a single executable.
	Windowed   bool    // Suppress the console window.
	Icon       string  // Icon attached to the artifact.
	Resources  Mapping // Resource directory mapping.
	EntryPoint string  // Application entry script.
	AppName    string  // Artifact name. Empty uses the entry script's base name.
	DistDir    string  // Output directory.
	WorkDir    string  // Scratch directory.
	SpecDir    string  // Where the generated spec file is written.
	Root       string  // Working directory of the bundler.
}

// Builds the spec for a project.
//
// The resource directory keeps the spelling it has in the configuration as
// the mapping source, relative to the project root, and its base name as the
// destination. A relative "resources" therefore maps to "resources".
func NewSpec(layout project.Layout, cfg project.Config) Spec {
	source := cfg.ResourceDir
	if source == "" {
		source = layout.ResourceDir
	}

	return Spec{
		OneFile:    true,
		Windowed:   true,
		Icon:       layout.IconPath,
		Resources:  Mapping{Source: filepath.FromSlash(source), Dest: filepath.Base(filepath.FromSlash(source))},
		EntryPoint: layout.EntryScript,
		AppName:    cfg.AppName,
		DistDir:    layout.DistDir,
		WorkDir:    layout.WorkDir,
		SpecDir:    layout.Root,
		Root:       layout.Root,
	}
}

// Returns the artifact name the bundler will use.
func (s Spec) Name() string {
	if s.AppName != "" {
		return s.AppName
	}
	base := filepath.Base(s.EntryPoint)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Returns the interpreter arguments that run the bundler with this spec.
func Args(s Spec, p target.Platform) []string {
	args := []string{"-m", "PyInstaller", "--noconfirm"}

	if s.OneFile {
		args = append(args, "--onefile")
	}
	if s.Windowed {
		args = append(args, "--windowed")
	}
	if s.Icon != "" {
		args = append(args, "--icon", s.Icon)
	}
	if s.Resources.Source != "" {
		args = append(args, "--add-data", s.Resources.Format(p.DataSeparator()))
	}
	if s.AppName != "" {
		args = append(args, "--name", s.AppName)
	}

	args = append(args,
		"--distpath", s.DistDir,
		"--workpath", s.WorkDir,
		"--specpath", s.SpecDir,
		s.EntryPoint,
	)
	return args
}
