package artifact

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"

	"github.com/musicalloto/lotopack/internal/target"
)

// A finished build output.
type Artifact struct {
	Path   string        // Absolute path of the executable or bundle.
	Bundle bool          // Path is an application bundle directory.
	Size   int64         // Total size of regular files in bytes.
	Digest digest.Digest // Content digest.
}

// Returns the paths the bundler may have produced for name, most specific
// first.
func Candidates(distDir, name string, p target.Platform) []string {
	exe := filepath.Join(distDir, p.ExecutableName(name))
	if p.IsDarwin() {
		return []string{filepath.Join(distDir, name+".app"), exe}
	}
	return []string{exe}
}

// Finds the artifact for name in distDir and fingerprints it.
func Locate(distDir, name string, p target.Platform) (*Artifact, error) {
	for _, path := range Candidates(distDir, name, p) {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		return inspect(path, info.IsDir())
	}
	return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, Candidates(distDir, name, p)[0])
}

func inspect(path string, bundle bool) (*Artifact, error) {
	var (
		size int64
		dgst digest.Digest
		err  error
	)
	if bundle {
		size, dgst, err = digestDir(path)
	} else {
		size, dgst, err = digestFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDigest, path, err)
	}

	return &Artifact{Path: path, Bundle: bundle, Size: size, Digest: dgst}, nil
}

func digestFile(path string) (int64, digest.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer f.Close()

	digester := digest.Canonical.Digester()
	n, err := io.Copy(digester.Hash(), f)
	if err != nil {
		return 0, "", err
	}
	return n, digester.Digest(), nil
}

// Digests a directory tree. Each entry contributes its slash-separated
// relative path, a type tag, and its content or link target.
func digestDir(root string) (int64, digest.Digest, error) {
	digester := digest.Canonical.Digester()
	h := digester.Hash()
	var size int64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		switch {
		case d.Type()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(h, "L %s\x00%s\x00", rel, filepath.ToSlash(link))

		case d.IsDir():
			fmt.Fprintf(h, "D %s\x00", rel)

		case d.Type().IsRegular():
			info, err := d.Info()
			if err != nil {
				return err
			}
			fmt.Fprintf(h, "F %s\x00%d\x00", rel, info.Size())
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			n, err := io.Copy(h, f)
			f.Close()
			if err != nil {
				return err
			}
			size += n
		}
		return nil
	})
	if err != nil {
		return 0, "", err
	}
	return size, digester.Digest(), nil
}
