// Package runnertest provides a recording [runner.Runner] for tests.
package runnertest

import (
	"context"
	"sync"

	"github.com/musicalloto/lotopack/internal/runner"
)

// Records every command and optionally simulates its effects.
type Recorder struct {
	// Called for each command. A nil Handle makes every command succeed.
	Handle func(cmd runner.Command) error

	mu       sync.Mutex
	commands []runner.Command
}

// Records cmd and delegates to Handle.
func (r *Recorder) Run(ctx context.Context, cmd runner.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if r.Handle == nil {
		return nil
	}
	return r.Handle(cmd)
}

// Returns the commands run so far.
func (r *Recorder) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]runner.Command(nil), r.commands...)
}

// Returns the number of commands whose arguments start with prefix.
func (r *Recorder) Count(prefix ...string) int {
	n := 0
	for _, cmd := range r.Commands() {
		if hasPrefix(cmd.Args, prefix) {
			n++
		}
	}
	return n
}

func hasPrefix(args, prefix []string) bool {
	if len(args) < len(prefix) {
		return false
	}
	for i := range prefix {
		if args[i] != prefix[i] {
			return false
		}
	}
	return true
}
