// Package bundle invokes the native bundler (PyInstaller).
//
// A [Spec] is the complete, immutable option set for one bundler run. It is
// built fresh for every build from the project layout with [NewSpec], turned
// into an argument list with [Args], and executed exactly once with
// [Invoke]. The options are fixed: a single-file, windowed (no console)
// artifact with the project icon attached and the resource directory
// bundled under its own name.
//
// The resource mapping argument joins source and destination with the
// target platform's separator (";" on Windows, ":" elsewhere) because the
// bundler splits it on that exact character.
//
// Example usage:
//
//	spec := bundle.NewSpec(layout, cfg)
//	if err := bundle.Invoke(ctx, r, ready, spec, platform); err != nil {
//	    return err
//	}
package bundle
