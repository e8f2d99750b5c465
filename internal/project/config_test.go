package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/musicalloto/lotopack/internal/target"
)

func TestDefaultsDarwin(t *testing.T) {
	cfg := Defaults(target.ForOS("darwin"))

	want := Config{
		AppName:        "MusicalLoto",
		EntryScript:    "app.py",
		IconPath:       "resources/icon.ico",
		ResourceDir:    "resources",
		EnvironmentDir: "venv",
		Dependencies:   []string{"pyinstaller", "PyQt6"},
		Provision:      true,
		Clean:          true,
		CleanTargets:   []string{"build", "dist", "*.spec"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("Defaults(darwin) mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultsWindows(t *testing.T) {
	cfg := Defaults(target.ForOS("windows"))

	if cfg.AppName != "" {
		t.Errorf("AppName = %q, want empty", cfg.AppName)
	}
	if cfg.Provision {
		t.Error("Provision = true, want false")
	}
	if cfg.Clean {
		t.Error("Clean = true, want false")
	}
	if cfg.EntryScript != "app.py" || cfg.ResourceDir != "resources" {
		t.Errorf("entry/resources = %q/%q, want app.py/resources", cfg.EntryScript, cfg.ResourceDir)
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, os := range []string{"darwin", "windows", "linux"} {
		if err := Validate(Defaults(target.ForOS(os))); err != nil {
			t.Errorf("Defaults(%s) invalid: %v", os, err)
		}
	}
}

func TestLoadWithoutFile(t *testing.T) {
	p := target.ForOS("darwin")

	cfg, err := Load(t.TempDir(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(Defaults(p), cfg); diff != "" {
		t.Fatalf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "\ufeffappName: ShishLoto\nentryScript: musical_loto.py\nprovision: false\n")

	cfg, err := Load(root, target.ForOS("darwin"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppName != "ShishLoto" {
		t.Errorf("AppName = %q, want ShishLoto", cfg.AppName)
	}
	if cfg.EntryScript != "musical_loto.py" {
		t.Errorf("EntryScript = %q, want musical_loto.py", cfg.EntryScript)
	}
	if cfg.Provision {
		t.Error("Provision = true, want false")
	}
	if cfg.ResourceDir != "resources" {
		t.Errorf("ResourceDir = %q, want default resources", cfg.ResourceDir)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "appname: x\n"},
		{name: "empty entry script", yaml: "entryScript: \"\"\n"},
		{name: "provision without dependencies", yaml: "provision: true\ndependencies: []\n"},
		{name: "clean without targets", yaml: "clean: true\ncleanTargets: []\n"},
		{name: "malformed", yaml: "entryScript: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, tt.yaml)

			_, err := Load(root, target.ForOS("darwin"))
			if !errors.Is(err, ErrConfig) {
				t.Fatalf("err = %v, want ErrConfig", err)
			}
		})
	}
}

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(root, ConfigFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
