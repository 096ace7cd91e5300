package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/cliprompt/internal/config"
	"github.com/raphi011/cliprompt/internal/log"
	"github.com/raphi011/cliprompt/internal/term"
	"github.com/raphi011/cliprompt/internal/ui/prompt"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// replay holds scripted input for headless runs.
type replay struct {
	enabled bool
	keys    []term.Key
	input   string
}

type replayKey struct{}

func withReplay(ctx context.Context, r replay) context.Context {
	return context.WithValue(ctx, replayKey{}, r)
}

func replayFromContext(ctx context.Context) replay {
	r, _ := ctx.Value(replayKey{}).(replay)
	return r
}

type screenKey struct{}

// withScreen overrides where a headless session draws its final screen.
// Defaults to stderr.
func withScreen(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, screenKey{}, w)
}

// session is one command's terminal and prompter.
type session struct {
	*prompt.Prompter
	buf    *term.Buffer // set in headless mode
	screen io.Writer
}

// newSession resolves symbols, palette and spinner settings from the config
// in ctx and picks the terminal: a replay buffer when --keys or --input was
// given, the console otherwise.
func newSession(ctx context.Context) *session {
	cfg := config.FromContext(ctx)
	r := replayFromContext(ctx)
	l := log.FromContext(ctx)

	s := &session{}
	var t term.Terminal
	if r.enabled {
		s.buf = term.NewBuffer()
		s.buf.PushKeys(r.keys...)
		s.buf.SetInput(r.input)
		s.screen, _ = ctx.Value(screenKey{}).(io.Writer)
		if s.screen == nil {
			s.screen = colorprofile.NewWriter(os.Stderr, os.Environ())
		}
		t = &replayTerminal{Buffer: s.buf}
	} else {
		t = term.Stderr()
	}

	unicode := styles.ResolveUnicode(cfg.Unicode, os.Stderr)
	sym := styles.NewSymbols(unicode)
	pal := resolvePalette(cfg, l)

	s.Prompter = prompt.New(t,
		prompt.WithSymbols(sym),
		prompt.WithPalette(pal),
		prompt.WithSpinner(sym.SpinnerFramesFor(cfg.Spinner.Style, unicode), cfg.Spinner.Interval.Duration),
	)
	return s
}

// errKeysExhausted ends a replay whose prompt wants more keys than --keys gave.
var errKeysExhausted = errors.New("replay ran out of keys")

// replayTerminal stops a replay once its keys run out. The buffer answers an
// empty queue with enter; one such enter is allowed so a trailing "enter" can
// be left out of --keys, the next read fails.
type replayTerminal struct {
	*term.Buffer
	implicit bool
}

func (r *replayTerminal) ReadKey() (term.Key, error) {
	if r.PendingKeys() == 0 {
		if r.implicit {
			return term.KeyUnknown, errKeysExhausted
		}
		r.implicit = true
	}
	return r.Buffer.ReadKey()
}

// resolvePalette builds the palette for the configured theme. An invalid
// theme falls back to the default with a warning.
func resolvePalette(cfg *config.Config, l *log.Logger) styles.Palette {
	if cfg.Theme.Name == styles.ThemeNone {
		return styles.PlainPalette()
	}
	theme, err := styles.SelectTheme(cfg.Theme.Name, cfg.Theme.Mode, styles.Overrides{
		Primary: cfg.Theme.Primary,
		Accent:  cfg.Theme.Accent,
		Success: cfg.Theme.Success,
		Error:   cfg.Theme.Error,
		Warning: cfg.Theme.Warning,
	})
	if err != nil {
		l.Printf("Warning: %v\n", err)
	}
	return styles.NewPalette(theme)
}

// close flushes the headless screen. It is a no-op for the console.
func (s *session) close() error {
	if s.buf == nil {
		return nil
	}
	_, err := fmt.Fprint(s.screen, s.buf.String())
	return err
}

// run calls fn and closes the session. Ctrl+C during a prompt draws the
// cancel line and returns errCancelled.
func (s *session) run(fn func() error) error {
	err := fn()
	if errors.Is(err, term.ErrInterrupted) {
		_ = s.Cancel("Operation cancelled.")
		err = errCancelled
	}
	if cerr := s.close(); err == nil {
		err = cerr
	}
	return err
}
