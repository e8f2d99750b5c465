package toolchain

import (
	"errors"
	"fmt"

	"github.com/containerd/errdefs"
)

var (
	ErrProvision             = errors.New("environment provisioning failed")
	ErrEnvironmentMissing    = fmt.Errorf("environment does not exist: %w", errdefs.ErrNotFound)
	ErrInterpreterMissing    = fmt.Errorf("interpreter does not exist: %w", errdefs.ErrNotFound)
	ErrBasePythonMissing     = fmt.Errorf("no usable system python: %w", errdefs.ErrNotFound)
	ErrBasePythonTooOld      = fmt.Errorf("system python too old: %w", errdefs.ErrFailedPrecondition)
	ErrEnvironmentIncomplete = fmt.Errorf("environment incomplete after creation: %w", errdefs.ErrDataLoss)
)
