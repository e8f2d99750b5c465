package clean

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRunRemovesTargets(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "build", "MusicalLoto", "warn.txt"))
	touch(t, filepath.Join(root, "dist", "MusicalLoto"))
	touch(t, filepath.Join(root, "MusicalLoto.spec"))
	touch(t, filepath.Join(root, "other.spec"))
	touch(t, filepath.Join(root, "app.py"))
	touch(t, filepath.Join(root, "resources", "nested.spec"))

	removed, err := Run(root, []string{"build", "dist", "*.spec"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sort.Strings(removed)
	want := []string{
		filepath.Join(root, "MusicalLoto.spec"),
		filepath.Join(root, "build"),
		filepath.Join(root, "dist"),
		filepath.Join(root, "other.spec"),
	}
	sort.Strings(want)
	if len(removed) != len(want) {
		t.Fatalf("removed = %v, want %v", removed, want)
	}
	for i := range want {
		if removed[i] != want[i] {
			t.Errorf("removed[%d] = %q, want %q", i, removed[i], want[i])
		}
	}

	for _, p := range want {
		if exists(p) {
			t.Errorf("%s still exists", p)
		}
	}
	if !exists(filepath.Join(root, "app.py")) {
		t.Error("entry script removed")
	}
	if !exists(filepath.Join(root, "resources", "nested.spec")) {
		t.Error("pattern matched below the root")
	}
}

func TestRunMissingTargetsAreNotErrors(t *testing.T) {
	root := t.TempDir()

	removed, err := Run(root, []string{"build", "dist", "*.spec"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(removed) != 0 {
		t.Fatalf("removed = %v, want nothing", removed)
	}
}

func TestRunMissingRoot(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "missing"), []string{"dist", "*.spec"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunRefusesEscapingTargets(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "proj")
	outside := filepath.Join(parent, "keep")
	touch(t, filepath.Join(outside, "file"))
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Run(root, []string{"../keep", "."})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !exists(outside) {
		t.Fatal("directory outside the root was removed")
	}
	if !exists(root) {
		t.Fatal("root was removed")
	}
}

func TestRunInvalidPattern(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "dist", "a"))

	_, err := Run(root, []string{"[", "dist"})
	if err == nil {
		t.Fatal("expected error for invalid pattern")
	}
	if exists(filepath.Join(root, "dist")) {
		t.Fatal("valid target not removed after an invalid one")
	}
}
