package term

import (
	"errors"
	"io"
)

// ErrInterrupted is returned by ReadKey when the user presses Ctrl+C while
// the terminal is in raw mode.
var ErrInterrupted = errors.New("interrupted")

// Terminal is the surface prompts render to and read from.
//
// Implementations must apply writes in order and keep the cursor model
// consistent with what they emit; prompts redraw by moving the cursor up and
// rewriting lines that start with "\r".
type Terminal interface {
	io.Writer

	// WriteLine writes s and moves to column 0 of the next row.
	WriteLine(s string) error
	// ReadLine returns one line of input without the line terminator.
	ReadLine() (string, error)
	// ReadKey blocks until a key event is available.
	ReadKey() (Key, error)

	MoveCursorUp(n int) error
	MoveCursorDown(n int) error
	ShowCursor() error
	HideCursor() error

	Flush() error
	ClearLine() error
	ClearChars(n int) error
}

var (
	_ Terminal = (*Buffer)(nil)
	_ Terminal = (*Console)(nil)
)
