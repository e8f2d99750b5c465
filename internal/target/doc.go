// Describes the operating system an artifact is built for.
//
// A [Platform] wraps an OCI platform descriptor parsed with the containerd
// platform parser, so "darwin", "macos", "windows/amd64" and "linux/arm64/v8"
// are all accepted. The platform decides the conventions the bundler and the
// Python environment follow: the separator used in resource mappings, the
// location of the interpreter inside an environment, the marker file that
// identifies a usable environment, and the artifact naming.
//
// Example usage:
//
//	p, err := target.Parse("windows")
//	if err != nil {
//	    return err
//	}
//	mapping := "resources" + p.DataSeparator() + "resources" // "resources;resources"
package target
