package prompt

import (
	"io"
	"time"

	"github.com/raphi011/cliprompt/internal/term"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// DefaultSpinnerInterval is the frame delay used when none is configured.
const DefaultSpinnerInterval = 500 * time.Millisecond

// Prompter renders prompts and messages on a terminal.
//
// It is not safe for concurrent use; prompts own the terminal while they run.
type Prompter struct {
	term term.Terminal
	sym  styles.Symbols
	pal  styles.Palette

	spinnerFrames   []string
	spinnerInterval time.Duration
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithSymbols sets the glyph table. The default is the unicode set.
func WithSymbols(s styles.Symbols) Option {
	return func(p *Prompter) { p.sym = s }
}

// WithPalette sets the decorators. The default leaves text uncolored.
func WithPalette(pal styles.Palette) Option {
	return func(p *Prompter) { p.pal = pal }
}

// WithSpinner overrides the spinner frames and frame delay. Empty frames keep
// the symbol table's frames, a non-positive interval keeps the default.
func WithSpinner(frames []string, interval time.Duration) Option {
	return func(p *Prompter) {
		p.spinnerFrames = frames
		p.spinnerInterval = interval
	}
}

// New creates a Prompter drawing on t.
func New(t term.Terminal, opts ...Option) *Prompter {
	p := &Prompter{
		term: t,
		sym:  styles.NewSymbols(true),
		pal:  styles.PlainPalette(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if len(p.spinnerFrames) == 0 {
		p.spinnerFrames = p.sym.SpinnerFrames
	}
	if p.spinnerInterval <= 0 {
		p.spinnerInterval = DefaultSpinnerInterval
	}
	return p
}

// Symbols returns the glyph table in use.
func (p *Prompter) Symbols() styles.Symbols {
	return p.sym
}

func (p *Prompter) write(s string) error {
	_, err := io.WriteString(p.term, s)
	return ioErr("write", err)
}

func (p *Prompter) writeLine(s string) error {
	return ioErr("write", p.term.WriteLine(s))
}

// question renders the step marker in front of a prompt message.
func (p *Prompter) question(msg string) string {
	return p.pal.Question(p.sym.StepSubmit) + " " + msg
}

// optionLine renders an in-place line inside a prompt block.
func (p *Prompter) optionLine(content string) string {
	return "\r" + p.sym.Bar + " " + content
}

// emptyLine closes a block with a bare bar.
func (p *Prompter) emptyLine() error {
	return p.writeLine(p.sym.Bar)
}

func (p *Prompter) hideCursor() error {
	return ioErr("hide cursor", p.term.HideCursor())
}

func (p *Prompter) showCursor() error {
	return ioErr("show cursor", p.term.ShowCursor())
}

func (p *Prompter) moveUp(n int) error {
	return ioErr("move cursor", p.term.MoveCursorUp(n))
}

func (p *Prompter) moveDown(n int) error {
	return ioErr("move cursor", p.term.MoveCursorDown(n))
}

func (p *Prompter) flush() error {
	return ioErr("flush", p.term.Flush())
}

func (p *Prompter) readKey() (term.Key, error) {
	k, err := p.term.ReadKey()
	return k, ioErr("read key", err)
}
