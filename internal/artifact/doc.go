// Package artifact finds, fingerprints and publishes bundler output.
//
// The bundler writes its result under the conventional dist directory: an
// .exe on Windows, an .app bundle (next to a bare executable) on macOS, and
// a bare executable elsewhere. [Locate] picks the artifact that represents
// the build, records its size and a content digest, and [Publish] copies it
// to a release directory.
//
// The digest covers file contents and, for bundles, relative paths and
// symlink targets in lexical order. Two builds of unchanged sources that
// produce the same bytes therefore have the same digest, regardless of file
// timestamps.
package artifact
