package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/musicalloto/lotopack/internal/runner"
	"github.com/musicalloto/lotopack/internal/target"
)

// Turns a [State] into a [Ready] environment.
type Provisioner struct {
	runner   runner.Runner
	platform target.Platform
	allow    bool        // Create missing environments.
	locate   BaseLocator // Finds the interpreter environments are created from.
}

// Creates a provisioner that runs its commands through r.
//
// When allow is false, a missing environment is reported as
// [ErrEnvironmentMissing] instead of being created.
func NewProvisioner(r runner.Runner, p target.Platform, allow bool) *Provisioner {
	return &Provisioner{
		runner:   r,
		platform: p,
		allow:    allow,
		locate:   SystemPython,
	}
}

// Replaces the base interpreter lookup.
func (p *Provisioner) WithBaseLocator(locate BaseLocator) *Provisioner {
	p.locate = locate
	return p
}

// Makes the environment usable and returns it.
//
// A [Ready] state is returned unchanged without running anything. A
// [NeedsProvisioning] state creates the environment, upgrades pip and
// installs deps, in that order, stopping at the first failure. Failures of
// the external tools keep their [*runner.ExitError] in the chain.
func (p *Provisioner) Provision(ctx context.Context, state State, deps []string) (Ready, error) {
	switch s := state.(type) {
	case Ready:
		slog.Debug("reusing environment", "root", s.RootDir, "interpreter", s.Interpreter)
		return s, nil

	case NeedsProvisioning:
		if s.Explicit {
			return Ready{}, fmt.Errorf("%w: %s", ErrInterpreterMissing, s.Interpreter)
		}
		if !p.allow {
			return Ready{}, fmt.Errorf("%w: %s", ErrEnvironmentMissing, s.RootDir)
		}
		return p.create(ctx, s, deps)

	default:
		return Ready{}, fmt.Errorf("%w: unknown environment state %T", ErrProvision, state)
	}
}

// Creates a new environment and installs deps into it.
func (p *Provisioner) create(ctx context.Context, s NeedsProvisioning, deps []string) (Ready, error) {
	slog.Info("creating environment", "root", s.RootDir)

	base, err := p.locate(ctx)
	if err != nil {
		return Ready{}, fmt.Errorf("%w: %w", ErrProvision, err)
	}

	err = p.runner.Run(ctx, runner.Command{
		Path: base,
		Args: []string{"-m", "venv", s.RootDir},
		Dir:  filepath.Dir(s.RootDir),
	})
	if err != nil {
		return Ready{}, fmt.Errorf("%w: create %s: %w", ErrProvision, s.RootDir, err)
	}

	ready := Ready{RootDir: s.RootDir, Interpreter: s.Interpreter}
	if !exists(ready.Interpreter) || !exists(p.platform.ActivationMarker(s.RootDir)) {
		return Ready{}, fmt.Errorf("%w: %s", ErrEnvironmentIncomplete, s.RootDir)
	}

	steps := [][]string{
		{"-m", "pip", "install", "--upgrade", "pip"},
		append([]string{"-m", "pip", "install"}, deps...),
	}
	for _, args := range steps {
		slog.Info("installing packages", "args", args[3:])
		if err := p.pip(ctx, ready, args); err != nil {
			return Ready{}, err
		}
	}

	return ready, nil
}

// Runs a pip command inside the activated environment.
func (p *Provisioner) pip(ctx context.Context, ready Ready, args []string) error {
	err := p.runner.Run(ctx, runner.Command{
		Path: ready.Interpreter,
		Args: args,
		Env:  ready.Activate(p.platform),
		Dir:  filepath.Dir(ready.RootDir),
	})
	if err != nil {
		return fmt.Errorf("%w: pip %v: %w", ErrProvision, args[3:], err)
	}
	return nil
}
