// Parses flags, configures logging and runs the lotopack commands.
//
// The driver accepts the following global flags:
//
//	-q, --quiet            Suppress informational output.
//	-v, --verbose          Enable verbose output.
//	-d, --debug            Enable debug output.
//	-p, --project=DIR      Project root (default: parent of the driver's directory).
//	-t, --target=OS[/ARCH] Target platform (default: host).
//
// Commands:
//
//	build     Build the application (default).
//	clean     Remove previous build output.
//	env       Create or check the build environment.
//	version   Show version information.
//
// Flags override build-time defaults set via linker flags. After parsing, the
// global logger is rebuilt to reflect the final level and verbosity before
// the command runs.
package cli
