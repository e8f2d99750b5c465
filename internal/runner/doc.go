// Package runner executes external tools on the host.
//
// Every external step of a build (creating a Python environment, installing
// packages, invoking the bundler) is a [Command] handed to a [Runner]. The
// host runner starts the process, connects it to the console, and blocks
// until it exits. A non-zero exit is returned as an [*ExitError] carrying the
// tool's own exit code so the caller can propagate it unchanged; the tool's
// output is never parsed.
//
// Example usage:
//
//	r := runner.NewHost(os.Stdout, os.Stderr)
//	err := r.Run(ctx, runner.Command{
//	    Path: "/proj/venv/bin/python",
//	    Args: []string{"-m", "pip", "--version"},
//	    Dir:  "/proj",
//	})
//	os.Exit(runner.ExitCode(err))
package runner
