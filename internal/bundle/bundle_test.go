package bundle

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/musicalloto/lotopack/internal/project"
	"github.com/musicalloto/lotopack/internal/runner"
	"github.com/musicalloto/lotopack/internal/runner/runnertest"
	"github.com/musicalloto/lotopack/internal/target"
	"github.com/musicalloto/lotopack/internal/toolchain"
)

func specFor(os string) (Spec, project.Layout) {
	p := target.ForOS(os)
	cfg := project.Defaults(p)
	layout := project.Resolve(filepath.FromSlash("/proj"), cfg, p)
	return NewSpec(layout, cfg), layout
}

func TestResourceMapping(t *testing.T) {
	m := Mapping{Source: "resources", Dest: "resources"}

	if got := m.Format(target.ForOS("windows").DataSeparator()); got != "resources;resources" {
		t.Fatalf("windows mapping = %q, want resources;resources", got)
	}
	if got := m.Format(target.ForOS("darwin").DataSeparator()); got != "resources:resources" {
		t.Fatalf("darwin mapping = %q, want resources:resources", got)
	}
}

func TestNewSpec(t *testing.T) {
	spec, layout := specFor("darwin")

	want := Spec{
		OneFile:    true,
		Windowed:   true,
		Icon:       layout.IconPath,
		Resources:  Mapping{Source: "resources", Dest: "resources"},
		EntryPoint: layout.EntryScript,
		AppName:    "MusicalLoto",
		DistDir:    layout.DistDir,
		WorkDir:    layout.WorkDir,
		SpecDir:    layout.Root,
		Root:       layout.Root,
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("NewSpec mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSpecNestedResourceDir(t *testing.T) {
	p := target.ForOS("darwin")
	cfg := project.Defaults(p)
	cfg.ResourceDir = "assets/resources"

	spec := NewSpec(project.Resolve(filepath.FromSlash("/proj"), cfg, p), cfg)

	want := Mapping{Source: filepath.FromSlash("assets/resources"), Dest: "resources"}
	if spec.Resources != want {
		t.Fatalf("Resources = %+v, want %+v", spec.Resources, want)
	}
}

func TestArgsDarwin(t *testing.T) {
	spec, l := specFor("darwin")

	want := []string{
		"-m", "PyInstaller", "--noconfirm",
		"--onefile",
		"--windowed",
		"--icon", l.IconPath,
		"--add-data", "resources:resources",
		"--name", "MusicalLoto",
		"--distpath", l.DistDir,
		"--workpath", l.WorkDir,
		"--specpath", l.Root,
		l.EntryScript,
	}
	if diff := cmp.Diff(want, Args(spec, target.ForOS("darwin"))); diff != "" {
		t.Fatalf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestArgsWindows(t *testing.T) {
	spec, l := specFor("windows")

	want := []string{
		"-m", "PyInstaller", "--noconfirm",
		"--onefile",
		"--windowed",
		"--icon", filepath.Join(l.Root, "resources", "icon.ico"),
		"--add-data", "resources;resources",
		"--distpath", l.DistDir,
		"--workpath", l.WorkDir,
		"--specpath", l.Root,
		l.EntryScript,
	}
	if diff := cmp.Diff(want, Args(spec, target.ForOS("windows"))); diff != "" {
		t.Fatalf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestName(t *testing.T) {
	spec, _ := specFor("windows")
	if got := spec.Name(); got != "app" {
		t.Fatalf("Name = %q, want app (entry base name)", got)
	}

	spec.AppName = "MusicalLoto"
	if got := spec.Name(); got != "MusicalLoto" {
		t.Fatalf("Name = %q, want MusicalLoto", got)
	}
}

func TestInvoke(t *testing.T) {
	p := target.Host()
	spec, l := specFor(p.OS())
	ready := toolchain.Ready{RootDir: l.EnvironmentDir, Interpreter: l.Interpreter}
	rec := &runnertest.Recorder{}

	if err := Invoke(context.Background(), rec, ready, spec, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmds := rec.Commands()
	if len(cmds) != 1 {
		t.Fatalf("ran %d commands, want exactly 1", len(cmds))
	}
	if cmds[0].Path != l.Interpreter {
		t.Errorf("Path = %q, want %q", cmds[0].Path, l.Interpreter)
	}
	if cmds[0].Dir != l.Root {
		t.Errorf("Dir = %q, want %q", cmds[0].Dir, l.Root)
	}
	if diff := cmp.Diff(Args(spec, p), cmds[0].Args); diff != "" {
		t.Errorf("Args mismatch (-want +got):\n%s", diff)
	}
}

func TestInvokePropagatesExitCode(t *testing.T) {
	p := target.Host()
	spec, l := specFor(p.OS())
	ready := toolchain.Ready{Interpreter: l.Interpreter}
	rec := &runnertest.Recorder{Handle: func(runner.Command) error {
		return &runner.ExitError{Command: "python", Code: 9}
	}}

	err := Invoke(context.Background(), rec, ready, spec, p)

	if !errors.Is(err, ErrBundle) {
		t.Fatalf("err = %v, want ErrBundle", err)
	}
	if code := runner.ExitCode(err); code != 9 {
		t.Fatalf("exit code = %d, want 9", code)
	}
}
