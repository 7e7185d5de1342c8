// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no mtag-specific dependencies and could be extracted as a
// standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - AudioProperties: the fixed technical fields a library record stores
//
// Primary entry points:
//   - Inspect: executes ffprobe and returns a parsed Result
//   - Result.AudioProperties: condenses the result into record fields
package ffprobe
