// Package project describes the application being packaged.
//
// A project is a directory holding an entry script, a resource directory and
// an icon. [Config] names those files along with the Python environment
// directory and the build behaviour of the driver; [Defaults] returns the
// built-in profile for a target platform and [Load] overlays the optional
// lotopack.yaml file found in the project root.
//
// [Resolve] turns a project root and a configuration into a [Layout] of
// absolute paths. The layout is computed once per build and never mutated.
// By default the root is derived from the location of the driver binary
// rather than the caller's working directory (see [DriverRoot]), so the
// driver behaves the same wherever it is invoked from.
//
// Example usage:
//
//	p := target.Host()
//	cfg, err := project.Load(root, p)
//	if err != nil {
//	    return err
//	}
//	layout := project.Resolve(root, cfg, p)
package project
