// Builds the process logger.
//
// Records are written to stderr through a tint handler. Colours are enabled
// only when the stream is an interactive terminal; on Windows the stream is
// wrapped so ANSI sequences render in legacy consoles. Timestamps and source
// locations are only shown in verbose mode.
package logging
