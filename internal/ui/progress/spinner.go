// Package progress runs a background task while animating a spinner.
//
// The task runs on a worker goroutine; the calling goroutine is the only one
// that writes to the terminal. [Run] enforces a timeout, joins the worker
// and reports timeouts and task failures as distinct errors.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raphi011/cliprompt/internal/term"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// DefaultInterval is the frame delay used when Options.Interval is unset.
const DefaultInterval = 500 * time.Millisecond

// dotCycle is the number of trailing-dot states the loading text cycles through.
const dotCycle = 4

var (
	// ErrTaskTimedOut is returned when the task did not finish within the timeout.
	ErrTaskTimedOut = errors.New("task timed out")
	// ErrTaskJoinFailed is returned when the task failed or panicked.
	ErrTaskJoinFailed = errors.New("task failed")
)

// WriteError wraps a terminal failure while drawing.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "draw spinner: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// PanicError carries the value a task panicked with.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("task panicked: %v", e.Value)
}

// Task is a unit of background work. It must return promptly once ctx is
// done; a task that ignores cancellation blocks Run past its timeout.
type Task func(ctx context.Context) error

// Options configures a spinner run.
type Options struct {
	Loading  string        // text next to the spinner
	Finish   string        // text of the success line
	Timeout  time.Duration // zero waits forever
	Interval time.Duration // frame delay, DefaultInterval if zero
	Frames   []string      // symbol table frames if empty
}

// Run executes task while drawing a spinner on t.
//
// On success the spinner line is replaced by a success line followed by a
// bar line. When the timeout fires first the task context is cancelled, the
// worker is joined and ErrTaskTimedOut is returned. A task error or panic
// yields ErrTaskJoinFailed wrapping the cause. Cancelling ctx stops the run
// with ctx's error.
func Run(ctx context.Context, t term.Terminal, sym styles.Symbols, pal styles.Palette, opts Options, task Task) error {
	frames := opts.Frames
	if len(frames) == 0 {
		frames = sym.SpinnerFrames
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	done := make(chan struct{})
	g.Go(func() (err error) {
		defer close(done)
		defer func() {
			if r := recover(); r != nil {
				err = &PanicError{Value: r}
			}
		}()
		return task(taskCtx)
	})

	var timeout <-chan time.Time
	if opts.Timeout > 0 {
		timer := time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	width := 0
	for i := 0; ; i++ {
		frame := frames[i%len(frames)]
		text := frame + " " + opts.Loading + dots(i)
		width = len(text)
		if _, err := t.Write([]byte("\r" + pal.Spinner(frame) + " " + opts.Loading + dots(i))); err != nil {
			cancel()
			_ = g.Wait()
			return &WriteError{Err: err}
		}
		if err := t.Flush(); err != nil {
			cancel()
			_ = g.Wait()
			return &WriteError{Err: err}
		}

		select {
		case <-done:
			err := g.Wait()
			if ctx.Err() != nil {
				// The task most likely returned because the caller gave up.
				_ = t.ClearLine()
				return ctx.Err()
			}
			if err != nil {
				_ = t.ClearLine()
				return fmt.Errorf("%w: %w", ErrTaskJoinFailed, err)
			}
			return finish(t, sym, pal, opts.Finish, width)

		case <-timeout:
			cancel()
			err := g.Wait()
			_ = t.ClearLine()
			var pe *PanicError
			if errors.As(err, &pe) {
				return fmt.Errorf("%w: %w: %w", ErrTaskTimedOut, ErrTaskJoinFailed, err)
			}
			return ErrTaskTimedOut

		case <-ctx.Done():
			_ = g.Wait()
			_ = t.ClearLine()
			return ctx.Err()

		case <-ticker.C:
		}
	}
}

// dots returns the trailing dots for frame i, padded to a fixed width so a
// shorter state overwrites a longer one.
func dots(i int) string {
	n := i%dotCycle + 1
	return strings.Repeat(". ", n) + strings.Repeat("  ", dotCycle-n)
}

func finish(t term.Terminal, sym styles.Symbols, pal styles.Palette, message string, width int) error {
	if err := t.ClearLine(); err != nil {
		return &WriteError{Err: err}
	}

	line := sym.Success + " " + message
	// Pad over the spinner text for terminals that keep the line on clear.
	pad := strings.Repeat(" ", max(width-len(line), 0))
	if err := t.WriteLine("\r" + pal.Success(sym.Success) + " " + message + pad); err != nil {
		return &WriteError{Err: err}
	}
	if err := t.WriteLine(sym.Bar); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
