package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Name of the tool, used for the logger group and the CLI.
	Name = "lotopack"

	// Shown for any build variable that was not set via linker flags.
	defaultUndefined = "(undefined)"

	// Shown instead of a version string for builds made outside the pipeline.
	defaultLocalBuild = "(local)"

	// Release branch. Its name is omitted from version strings.
	releaseBranch = "main"
)

var (
	version   = "" // Release version (e.g., "0.4.1")
	branch    = "" // Git branch the binary was built from
	gitCommit = "" // Git commit hash

	rawQuiet   = "false" // Start in quiet mode
	rawDebug   = "false" // Start with debug logging
	rawVerbose = "false" // Start with verbose logging
)

// Returns the release version without a leading "v", or "(undefined)".
func Version() string {
	v := strings.ToLower(strings.TrimSpace(version))
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(v, "v")
}

// Returns the branch the binary was built from, or "(undefined)".
func Branch() string {
	b := strings.TrimSpace(branch)
	if b == "" {
		return defaultUndefined
	}
	return strings.ToLower(b)
}

// Returns the git commit hash, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Reports whether any of the pipeline build variables is missing.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == "" ||
		strings.TrimSpace(branch) == ""
}

// Returns "<version>[+<branch>] <commit> [<os>/<arch>]", or "(local)" for
// builds made outside the release pipeline.
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}

	b := ""
	if Branch() != releaseBranch {
		b = "+" + Branch()
	}

	return fmt.Sprintf("%s%s %s [%s/%s]", Version(), b, GitCommit(), runtime.GOOS, runtime.GOARCH)
}
