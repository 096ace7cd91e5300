package term

import (
	"bytes"
	"strings"
	"sync"
)

// Buffer is an in-memory terminal. It records output as rows of bytes and
// tracks a (row, column) cursor the same way a real terminal would under
// cursor-relative escape sequences.
//
// Input is scripted: ReadKey pops queued keys and falls back to KeyEnter
// when the queue is empty, ReadLine returns the seeded input.
type Buffer struct {
	mu     sync.Mutex
	lines  [][]byte
	row    int
	col    int
	hidden bool
	keys   []Key
	input  string
}

// NewBuffer creates an empty buffer with the cursor at (0, 0).
func NewBuffer() *Buffer {
	return &Buffer{}
}

// NewBufferWithOutput creates a buffer pre-filled with lines and the cursor
// at (row, col). The row is clamped to len(lines).
func NewBufferWithOutput(lines []string, row, col int) *Buffer {
	b := &Buffer{lines: make([][]byte, len(lines))}
	for i, l := range lines {
		b.lines[i] = []byte(l)
	}
	b.row = min(max(row, 0), len(b.lines))
	b.col = max(col, 0)
	return b
}

// Write applies p at the cursor. See the package documentation for the
// overwrite rules. It always accepts the whole input.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	segments := bytes.Split(p, []byte{'\n'})
	for i, seg := range segments {
		if len(seg) > 0 && seg[0] == '\r' {
			b.col = 0
		}

		end := b.writeSegment(seg)

		if i < len(segments)-1 {
			b.row++
			b.col = 0
		} else {
			b.col = end
		}
	}
	return len(p), nil
}

// writeSegment places seg on the cursor row and returns the column just past
// the written span.
func (b *Buffer) writeSegment(seg []byte) int {
	if b.row >= len(b.lines) {
		b.lines = append(b.lines, bytes.Clone(seg))
		return len(seg)
	}

	line := b.lines[b.row]
	if b.col >= len(line) {
		line = append(line, bytes.Repeat([]byte{' '}, b.col-len(line))...)
		line = append(line, seg...)
	} else {
		for i, c := range seg {
			if pos := b.col + i; pos < len(line) {
				line[pos] = c
			} else {
				line = append(line, c)
			}
		}
	}
	b.lines[b.row] = line
	return b.col + len(seg)
}

// WriteLine writes s and moves the cursor to column 0 of the next row.
func (b *Buffer) WriteLine(s string) error {
	if _, err := b.Write([]byte(s)); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.row >= len(b.lines) {
		// Writing an empty string on a fresh row still occupies that row.
		b.lines = append(b.lines, nil)
	}
	b.row++
	b.col = 0
	return nil
}

// ReadLine returns the seeded input. It does not consume it.
func (b *Buffer) ReadLine() (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.input, nil
}

// ReadKey pops the next queued key. An empty queue yields KeyEnter so that
// prompts driven by a buffer always terminate.
func (b *Buffer) ReadKey() (Key, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.keys) == 0 {
		return KeyEnter, nil
	}
	k := b.keys[0]
	b.keys = b.keys[1:]
	return k, nil
}

// MoveCursorUp moves the cursor n rows up, stopping at row 0.
func (b *Buffer) MoveCursorUp(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.row = max(b.row-max(n, 0), 0)
	return nil
}

// MoveCursorDown moves the cursor n rows down, stopping at the row after the
// last written line.
func (b *Buffer) MoveCursorDown(n int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.row = min(b.row+max(n, 0), len(b.lines))
	return nil
}

// ShowCursor marks the cursor visible.
func (b *Buffer) ShowCursor() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hidden = false
	return nil
}

// HideCursor marks the cursor hidden.
func (b *Buffer) HideCursor() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hidden = true
	return nil
}

// Flush is a no-op; the buffer is never behind.
func (b *Buffer) Flush() error { return nil }

// ClearLine is a no-op. Clears only affect transient display.
func (b *Buffer) ClearLine() error { return nil }

// ClearChars is a no-op. Clears only affect transient display.
func (b *Buffer) ClearChars(int) error { return nil }

// SetInput seeds the text returned by ReadLine.
func (b *Buffer) SetInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.input = s
}

// PushKeys appends keys to the input queue.
func (b *Buffer) PushKeys(keys ...Key) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.keys = append(b.keys, keys...)
}

// PendingKeys returns how many queued keys have not been read yet.
func (b *Buffer) PendingKeys() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys)
}

// Cursor returns the current (row, column).
func (b *Buffer) Cursor() (row, col int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.row, b.col
}

// CursorHidden reports whether HideCursor was called more recently than
// ShowCursor.
func (b *Buffer) CursorHidden() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hidden
}

// Lines returns a copy of the recorded rows.
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// String materializes the screen: rows joined by "\n". When the cursor sits
// on the row after the last line, a trailing empty row is included, so a
// final WriteLine shows up as a trailing newline.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	rows := make([]string, 0, len(b.lines)+1)
	for _, l := range b.lines {
		rows = append(rows, string(l))
	}
	if b.row == len(b.lines) {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

// Reset clears recorded output and moves the cursor home. Queued keys and
// seeded input are kept.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	b.row = 0
	b.col = 0
}
