// Package term provides the terminal surface that prompts draw on.
//
// [Terminal] is the capability set every prompt needs: line-buffered writes,
// relative cursor movement, cursor visibility and key/line input. Two
// implementations exist and are chosen at construction time:
//
//   - [Buffer]: an in-memory model of a cursor-addressed terminal. Writes
//     overwrite in place, "\r" returns to column 0, and the screen can be
//     materialized with [Buffer.String]. Used by tests and the CLI's headless
//     replay mode.
//   - [Console]: the real terminal. Output goes to stderr through a
//     colorprofile writer, cursor control uses ANSI sequences, and keys are
//     read in raw mode.
//
// # Buffer Semantics
//
// The buffer counts columns in bytes. A write is split on "\n"; each segment
// lands on the cursor row, padding with spaces when the cursor is past the end
// of the line and overwriting otherwise. Rows are never truncated. The cursor
// row is always within [0, len(lines)], where len(lines) means "the next,
// not yet written row".
package term
