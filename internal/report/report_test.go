package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/opencontainers/go-digest"
	"gopkg.in/yaml.v3"

	"github.com/musicalloto/lotopack/internal/artifact"
)

func summary() Summary {
	return Summary{
		RunID:    "3f1c",
		Name:     "MusicalLoto",
		Platform: "darwin/arm64",
		Artifact: &artifact.Artifact{
			Path:   "/proj/dist/MusicalLoto",
			Size:   3 << 20,
			Digest: digest.FromString("binary"),
		},
		Finished: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, summary())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Build complete: /proj/dist/MusicalLoto" {
		t.Fatalf("first line = %q, want %q", lines[0], "Build complete: /proj/dist/MusicalLoto")
	}
	if !strings.Contains(buf.String(), "3.0 MiB") {
		t.Fatalf("output %q does not contain size", buf.String())
	}
	if !strings.Contains(buf.String(), digest.FromString("binary").String()) {
		t.Fatalf("output %q does not contain digest", buf.String())
	}
	if strings.Contains(buf.String(), "copied") {
		t.Fatalf("output %q mentions a copy that was not made", buf.String())
	}
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("closed")
}

func TestPrintIgnoresWriteErrors(t *testing.T) {
	Print(brokenWriter{}, summary())
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.yaml")

	s := summary()
	s.Published = "/release/MusicalLoto"
	if err := Write(path, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got document
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}

	want := document{
		RunID:     "3f1c",
		Name:      "MusicalLoto",
		Platform:  "darwin/arm64",
		Path:      "/proj/dist/MusicalLoto",
		Size:      3 << 20,
		Digest:    digest.FromString("binary").String(),
		Published: "/release/MusicalLoto",
		Finished:  "2024-05-01T12:00:00Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteUnwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	err := Write(filepath.Join(blocker, "report.yaml"), summary())
	if !errors.Is(err, ErrReport) {
		t.Fatalf("err = %v, want ErrReport", err)
	}
}
