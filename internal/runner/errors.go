package runner

import (
	"errors"
	"fmt"
)

var ErrStart = errors.New("failed to start command")

// Returned when a command ran to completion with a non-zero exit code.
type ExitError struct {
	Command string // Base name of the executable.
	Code    int    // Exit code reported by the process.
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// Returns the process exit code for err.
//
// A nil error maps to 0, an [*ExitError] anywhere in the chain to its code,
// and any other error to 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Code != 0 {
		return exitErr.Code
	}
	return 1
}
