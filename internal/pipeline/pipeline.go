package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/musicalloto/lotopack/internal/artifact"
	"github.com/musicalloto/lotopack/internal/bundle"
	"github.com/musicalloto/lotopack/internal/clean"
	"github.com/musicalloto/lotopack/internal/project"
	"github.com/musicalloto/lotopack/internal/report"
	"github.com/musicalloto/lotopack/internal/runner"
	"github.com/musicalloto/lotopack/internal/target"
	"github.com/musicalloto/lotopack/internal/toolchain"
)

// Controls a pipeline run.
type Options struct {
	Root        string                // Project root.
	Platform    target.Platform       // Platform the artifact is built for.
	Config      project.Config        // Build configuration, already loaded and validated.
	Interpreter string                // Use this interpreter instead of the environment's own.
	NoClean     bool                  // Skip cleaning even if the configuration enables it.
	ReportPath  string                // Also write the summary as YAML to this file.
	Runner      runner.Runner         // Runs external tools. Defaults to the host.
	Stdout      io.Writer             // Receives the completion message. Defaults to os.Stdout.
	BaseLocator toolchain.BaseLocator // Finds the base interpreter. Defaults to the system one.
}

// Returned by [Run] and [Prepare], also when the run failed.
type Result struct {
	RunID       string             // Identifier of the run.
	State       State              // Last state reached.
	Layout      project.Layout     // Resolved paths. Zero before PathsResolved.
	Interpreter string             // Interpreter of the ready environment.
	Artifact    *artifact.Artifact // Produced artifact. Nil before Bundled.
	Published   string             // Published copy of the artifact, if any.
}

// Builds the project.
//
// The returned [Result] is never nil. On failure its State is [Failed] and
// the error names the step that failed; exit codes of external tools stay
// reachable through [runner.ExitCode].
func Run(ctx context.Context, opts Options) (*Result, error) {
	r, err := newRun(opts)
	if err != nil {
		return r.result(), err
	}
	r.log.Info("starting build", "root", opts.Root, "platform", opts.Platform.String())
	err = r.execute(ctx, r.steps())
	return r.result(), err
}

// Resolves paths and makes the environment ready without building.
func Prepare(ctx context.Context, opts Options) (*Result, error) {
	r, err := newRun(opts)
	if err != nil {
		return r.result(), err
	}
	err = r.execute(ctx, r.steps()[:2])
	return r.result(), err
}

// A single pipeline step. Run moves the pipeline to To on success.
type step struct {
	Name string
	To   State
	Skip bool
	Run  func(ctx context.Context) error
}

// Mutable state of one pipeline run.
type run struct {
	opts      Options
	id        string
	state     State
	log       *slog.Logger
	layout    project.Layout
	ready     toolchain.Ready
	spec      bundle.Spec
	artifact  *artifact.Artifact
	published string
}

// Creates a run and fills in default options.
func newRun(opts Options) (*run, error) {
	id := uuid.NewString()
	r := &run{
		opts:  opts,
		id:    id,
		state: Start,
		log:   slog.Default().With("run", id),
	}

	if opts.Root == "" {
		r.state = Failed
		return r, fmt.Errorf("%w: no project root", ErrOptions)
	}
	if r.opts.Runner == nil {
		r.opts.Runner = runner.NewHost(os.Stdout, os.Stderr)
	}
	if r.opts.Stdout == nil {
		r.opts.Stdout = os.Stdout
	}
	if r.opts.BaseLocator == nil {
		r.opts.BaseLocator = toolchain.SystemPython
	}
	return r, nil
}

// Returns the build steps in order.
func (r *run) steps() []step {
	cfg := r.opts.Config
	return []step{
		{Name: "resolve", To: PathsResolved, Run: r.resolve},
		{Name: "environment", To: EnvironmentReady, Run: r.environment},
		{Name: "clean", To: Cleaned, Skip: !cfg.Clean || r.opts.NoClean, Run: r.clean},
		{Name: "bundle", To: Bundled, Run: r.bundle},
		{Name: "report", To: Reported, Run: r.report},
	}
}

// Runs steps in order, stopping at the first failure.
func (r *run) execute(ctx context.Context, steps []step) error {
	for _, s := range steps {
		if s.Skip {
			r.log.Debug("skipping step", "step", s.Name)
			continue
		}
		if err := ctx.Err(); err != nil {
			return r.fail(s.Name, err)
		}

		r.log.Debug("running step", "step", s.Name, "state", r.state)
		if err := s.Run(ctx); err != nil {
			return r.fail(s.Name, err)
		}
		if err := r.transition(s.To); err != nil {
			return r.fail(s.Name, err)
		}
	}
	return nil
}

// Moves the run to next.
func (r *run) transition(next State) error {
	if !r.state.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", ErrTransition, r.state, next)
	}
	r.log.Debug("state changed", "from", r.state, "to", next)
	r.state = next
	return nil
}

// Moves the run to Failed and returns the step error.
func (r *run) fail(name string, err error) error {
	if r.state.CanTransition(Failed) {
		r.state = Failed
	}
	r.log.Debug("build failed", "step", name, "error", err)
	return fmt.Errorf("step %s: %w", name, err)
}

func (r *run) result() *Result {
	return &Result{
		RunID:       r.id,
		State:       r.state,
		Layout:      r.layout,
		Interpreter: r.ready.Interpreter,
		Artifact:    r.artifact,
		Published:   r.published,
	}
}

// Computes every path the build uses.
func (r *run) resolve(ctx context.Context) error {
	r.layout = project.Resolve(r.opts.Root, r.opts.Config, r.opts.Platform)
	if r.opts.Interpreter != "" {
		r.layout = r.layout.WithInterpreter(r.opts.Interpreter)
	}
	r.log.Debug("resolved layout",
		"entry", r.layout.EntryScript,
		"icon", r.layout.IconPath,
		"resources", r.layout.ResourceDir,
		"environment", r.layout.EnvironmentDir,
		"interpreter", r.layout.Interpreter,
	)
	return nil
}

// Reuses or creates the isolated environment.
func (r *run) environment(ctx context.Context) error {
	env := toolchain.Environment{
		RootDir:     r.layout.EnvironmentDir,
		Interpreter: r.layout.Interpreter,
		Explicit:    r.opts.Interpreter != "",
	}

	prov := toolchain.NewProvisioner(r.opts.Runner, r.opts.Platform, r.opts.Config.Provision).
		WithBaseLocator(r.opts.BaseLocator)

	ready, err := prov.Provision(ctx, toolchain.Detect(env, r.opts.Platform), r.opts.Config.Dependencies)
	if err != nil {
		return err
	}
	r.ready = ready
	r.log.Info("environment ready", "interpreter", ready.Interpreter)
	return nil
}

// Removes previous build output. Failures are logged, never returned.
func (r *run) clean(ctx context.Context) error {
	removed := clean.BestEffort(r.layout.Root, r.opts.Config.CleanTargets)
	r.log.Info("cleaned previous build", "removed", len(removed))
	return nil
}

// Runs the bundler and fingerprints what it produced.
func (r *run) bundle(ctx context.Context) error {
	r.spec = bundle.NewSpec(r.layout, r.opts.Config)
	if err := bundle.Invoke(ctx, r.opts.Runner, r.ready, r.spec, r.opts.Platform); err != nil {
		return err
	}

	a, err := artifact.Locate(r.spec.DistDir, r.spec.Name(), r.opts.Platform)
	if err != nil {
		return err
	}
	r.artifact = a

	if dir := r.opts.Config.PublishDir; dir != "" {
		dest, err := artifact.Publish(a, resolveDir(r.layout.Root, dir))
		if err != nil {
			return err
		}
		r.published = dest
	}
	return nil
}

// Announces the artifact. Only a failing report file is logged.
func (r *run) report(ctx context.Context) error {
	s := report.Summary{
		RunID:     r.id,
		Name:      r.spec.Name(),
		Platform:  r.opts.Platform.String(),
		Artifact:  r.artifact,
		Published: r.published,
		Finished:  time.Now(),
	}

	report.Print(r.opts.Stdout, s)

	if path := r.opts.ReportPath; path != "" {
		if err := report.Write(path, s); err != nil {
			r.log.Warn("build report not written", "path", path, "error", err)
		}
	}
	return nil
}

func resolveDir(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
