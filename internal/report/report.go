package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/musicalloto/lotopack/internal/artifact"
	"github.com/musicalloto/lotopack/internal/paths"
)

// Everything known about a successful build.
type Summary struct {
	RunID     string             // Identifier of the pipeline run.
	Name      string             // Artifact name.
	Platform  string             // Target platform.
	Artifact  *artifact.Artifact // The artifact produced.
	Published string             // Copy of the artifact, if published.
	Finished  time.Time          // When the build completed.
}

// On-disk form of a [Summary].
type document struct {
	RunID     string `yaml:"runId"`
	Name      string `yaml:"name"`
	Platform  string `yaml:"platform,omitempty"`
	Path      string `yaml:"path"`
	Bundle    bool   `yaml:"bundle,omitempty"`
	Size      int64  `yaml:"size"`
	Digest    string `yaml:"digest"`
	Published string `yaml:"published,omitempty"`
	Finished  string `yaml:"finished,omitempty"`
}

// Prints the completion message to w.
//
// The first line is always "Build complete: <path>". Write errors are
// ignored.
func Print(w io.Writer, s Summary) {
	a := s.Artifact
	fmt.Fprintf(w, "Build complete: %s\n", a.Path)
	fmt.Fprintf(w, "  size:   %s\n", humanize.IBytes(uint64(a.Size)))
	fmt.Fprintf(w, "  digest: %s\n", a.Digest)
	if s.Published != "" {
		fmt.Fprintf(w, "  copied: %s\n", s.Published)
	}
}

// Writes the summary as YAML to path, replacing any previous report.
func Write(path string, s Summary) error {
	doc := document{
		RunID:     s.RunID,
		Name:      s.Name,
		Platform:  s.Platform,
		Path:      s.Artifact.Path,
		Bundle:    s.Artifact.Bundle,
		Size:      s.Artifact.Size,
		Digest:    s.Artifact.Digest.String(),
		Published: s.Published,
	}
	if !s.Finished.IsZero() {
		doc.Finished = s.Finished.UTC().Format(time.RFC3339)
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReport, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return fmt.Errorf("%w: %w", ErrReport, err)
	}
	if err := os.WriteFile(path, data, paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrReport, err)
	}
	return nil
}
