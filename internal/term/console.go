package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	xterm "golang.org/x/term"
)

// Console is the real terminal. UI output goes to out (stderr by default so
// stdout stays clean for piping) and keys are read from in.
type Console struct {
	in     *os.File
	reader *bufio.Reader
	out    io.Writer
}

// NewConsole creates a console reading from in and writing to out. Styled
// output is downsampled to the colour profile detected for out.
func NewConsole(in, out *os.File) *Console {
	return &Console{
		in:     in,
		reader: bufio.NewReader(in),
		out:    colorprofile.NewWriter(out, os.Environ()),
	}
}

// Stderr returns a console on stdin/stderr.
func Stderr() *Console {
	return NewConsole(os.Stdin, os.Stderr)
}

// IsInteractive reports whether keys can be read one at a time.
func (c *Console) IsInteractive() bool {
	fd := c.in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func (c *Console) WriteLine(s string) error {
	_, err := io.WriteString(c.out, s+"\n")
	return err
}

// ReadLine reads one line from stdin. A final line without a newline is
// returned as is.
func (c *Console) ReadLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadKey reads a single key. When stdin is a terminal it is switched to raw
// mode for the duration of the read.
func (c *Console) ReadKey() (Key, error) {
	if c.IsInteractive() {
		fd := int(c.in.Fd())
		state, err := xterm.MakeRaw(fd)
		if err != nil {
			return KeyUnknown, fmt.Errorf("enable raw mode: %w", err)
		}
		defer func() { _ = xterm.Restore(fd, state) }()
	}
	return decodeKey(c.reader)
}

func (c *Console) MoveCursorUp(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(c.out, ansi.CursorUp(n))
	return err
}

func (c *Console) MoveCursorDown(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(c.out, ansi.CursorDown(n))
	return err
}

func (c *Console) ShowCursor() error {
	_, err := io.WriteString(c.out, ansi.ShowCursor)
	return err
}

func (c *Console) HideCursor() error {
	_, err := io.WriteString(c.out, ansi.HideCursor)
	return err
}

// Flush flushes buffered output when the writer supports it.
func (c *Console) Flush() error {
	if f, ok := c.out.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// ClearLine erases the current line and returns to column 0.
func (c *Console) ClearLine() error {
	_, err := io.WriteString(c.out, "\r"+ansi.EraseEntireLine)
	return err
}

// ClearChars erases the n characters left of the cursor.
func (c *Console) ClearChars(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(c.out, ansi.CursorBackward(n)+ansi.EraseLineRight)
	return err
}
