// Package debug builds the zap logger shared by the tracks CLI.
//
// Console output goes to the writer the caller passes in. When log.file is
// configured, a JSON copy is appended to that file and rotated by size.
// When the TRACKS_DEBUG environment variable is set to a file path, every
// debug message is also written there regardless of the configured level.
package debug
