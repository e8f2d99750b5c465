// Provides platform-appropriate user directories for lotopack.
//
// Paths follow XDG conventions on Linux and platform-native conventions on
// macOS and Windows. The tool name is used as the subdirectory under each
// base path.
package paths
