package prompt

import (
	"context"
	"errors"
	"time"

	"github.com/raphi011/cliprompt/internal/ui/progress"
)

// RunWithSpinner runs task while animating a spinner with the loading text,
// then writes a success line with finish. A zero timeout waits forever.
//
// Errors are [progress.ErrTaskTimedOut], [progress.ErrTaskJoinFailed],
// ctx's error, or an [IOError] when drawing fails.
func (p *Prompter) RunWithSpinner(ctx context.Context, loading, finish string, timeout time.Duration, task progress.Task) error {
	err := progress.Run(ctx, p.term, p.sym, p.pal, progress.Options{
		Loading:  loading,
		Finish:   finish,
		Timeout:  timeout,
		Interval: p.spinnerInterval,
		Frames:   p.spinnerFrames,
	}, task)

	var we *progress.WriteError
	if errors.As(err, &we) {
		return &IOError{Op: "spinner", Err: we.Err}
	}
	return err
}
