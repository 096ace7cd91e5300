package prompt

import (
	"errors"

	"github.com/raphi011/cliprompt/internal/term"
)

var errWrite = errors.New("write failed")

// failingTerminal rejects every write.
type failingTerminal struct {
	*term.Buffer
}

func (f failingTerminal) Write([]byte) (int, error) { return 0, errWrite }

func (f failingTerminal) WriteLine(string) error { return errWrite }

// interruptedTerminal fails every key read the way a console does on Ctrl+C.
type interruptedTerminal struct {
	*term.Buffer
}

func (i interruptedTerminal) ReadKey() (term.Key, error) { return term.KeyUnknown, term.ErrInterrupted }

// keyProbe records whether the cursor was hidden each time a key was read.
type keyProbe struct {
	*term.Buffer
	hidden []bool
}

func (k *keyProbe) ReadKey() (term.Key, error) {
	k.hidden = append(k.hidden, k.CursorHidden())
	return k.Buffer.ReadKey()
}

func newBuffer(keys ...term.Key) *term.Buffer {
	b := term.NewBuffer()
	b.PushKeys(keys...)
	return b
}

func abc() []SelectOption {
	return []SelectOption{
		NewSelectOption("a", "A"),
		NewSelectOption("b", "B"),
		NewSelectOption("c", "C"),
	}
}

// assertSettled checks the state every prompt leaves behind: visible cursor
// on the fresh row after the output.
func assertSettled(t interface {
	Helper()
	Errorf(string, ...any)
}, b *term.Buffer) {
	t.Helper()
	if b.CursorHidden() {
		t.Errorf("cursor still hidden after prompt")
	}
	if row, col := b.Cursor(); row != len(b.Lines()) || col != 0 {
		t.Errorf("Cursor() = (%d, %d), want (%d, 0)", row, col, len(b.Lines()))
	}
}
