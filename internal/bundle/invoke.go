package bundle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/musicalloto/lotopack/internal/runner"
	"github.com/musicalloto/lotopack/internal/target"
	"github.com/musicalloto/lotopack/internal/toolchain"
)

// Runs the bundler once inside the environment.
//
// The bundler's output goes straight to the console and is not inspected. A
// non-zero exit is returned wrapped in [ErrBundle] with the original
// [*runner.ExitError] kept in the chain.
func Invoke(ctx context.Context, r runner.Runner, env toolchain.Ready, s Spec, p target.Platform) error {
	slog.Info("bundling", "entry", s.EntryPoint, "name", s.Name(), "platform", p.String())

	err := r.Run(ctx, runner.Command{
		Path: env.Interpreter,
		Args: Args(s, p),
		Env:  env.Activate(p),
		Dir:  s.Root,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBundle, err)
	}
	return nil
}
