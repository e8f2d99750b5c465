// Package clean removes the output of previous builds.
//
// Targets are paths relative to the project root ("build", "dist") or glob
// patterns matched against the root's direct children ("*.spec"). Removal is
// best effort: missing targets are skipped silently and failures are
// collected and reported without stopping the build. Deletion is permanent.
package clean
