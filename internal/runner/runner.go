package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// A single external process invocation.
type Command struct {
	Path string   // Executable to run.
	Args []string // Arguments, not including the executable.
	Env  []string // "KEY=value" overrides merged on top of the current environment.
	Dir  string   // Working directory. Empty uses the current directory.
}

// Returns the command line for logging.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Executes commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// Runs commands as child processes of the current process.
type Host struct {
	stdout io.Writer
	stderr io.Writer
}

// Creates a [Host] runner whose children write to the given streams.
func NewHost(stdout, stderr io.Writer) *Host {
	return &Host{stdout: stdout, stderr: stderr}
}

// Runs the command and waits for it to exit.
//
// The child inherits the current environment with cmd.Env applied on top.
// Cancelling ctx kills the child. A non-zero exit is reported as an
// [*ExitError]; failures to start the process wrap [ErrStart].
func (h *Host) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = mergeEnv(os.Environ(), cmd.Env)
	c.Stdin = nil
	c.Stdout = h.stdout
	c.Stderr = h.stderr

	slog.Debug("exec", "command", cmd.String(), "dir", cmd.Dir)

	err := c.Run()
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code <= 0 {
			code = 1 // terminated by a signal
		}
		return &ExitError{Command: filepath.Base(cmd.Path), Code: code}
	}
	return errors.Join(ErrStart, err)
}

// Merges override env vars on top of a base env slice.
//
// Keys keep the position and spelling of their first occurrence so the
// result is stable. Keys compare case-insensitively on Windows, where "Path"
// and "PATH" name the same variable. An override with an empty value
// ("KEY=") removes the variable, which is how callers unset PYTHONHOME.
// Malformed entries without "=" are dropped.
func mergeEnv(base, overrides []string) []string {
	names := make(map[string]string, len(base)+len(overrides))
	values := make(map[string]string, len(base)+len(overrides))
	removed := make(map[string]bool)
	order := make([]string, 0, len(base)+len(overrides))

	set := func(entry string, override bool) {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			return
		}
		key := envKey(k)
		if _, seen := names[key]; !seen {
			names[key] = k
			order = append(order, key)
		}
		values[key] = v
		if override {
			removed[key] = v == ""
		}
	}

	for _, entry := range base {
		set(entry, false)
	}
	for _, entry := range overrides {
		set(entry, true)
	}

	result := make([]string, 0, len(order))
	for _, key := range order {
		if removed[key] {
			continue
		}
		result = append(result, names[key]+"="+values[key])
	}
	return result
}

// Normalizes an environment variable name for comparison.
func envKey(k string) string {
	if runtime.GOOS == "windows" {
		return strings.ToUpper(k)
	}
	return k
}

// Returns the value of key in an env slice, with later entries winning.
func Lookup(env []string, key string) (string, bool) {
	value, found := "", false
	for _, entry := range env {
		if k, v, ok := strings.Cut(entry, "="); ok && envKey(k) == envKey(key) {
			value, found = v, true
		}
	}
	return value, found
}
