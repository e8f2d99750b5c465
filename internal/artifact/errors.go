package artifact

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrArtifactMissing = fmt.Errorf("artifact not found: %w", errdefs.ErrNotFound)
	ErrDigest          = errors.New("failed to digest artifact")
	ErrPublish         = errors.New("failed to publish artifact")
)
