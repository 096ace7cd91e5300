package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/cmd"
	"github.com/raphi011/cliprompt/internal/config"
	"github.com/raphi011/cliprompt/internal/output"
	"github.com/raphi011/cliprompt/internal/ui/progress"
	"github.com/raphi011/cliprompt/internal/ui/prompt"
)

func newSpinCmd() *cobra.Command {
	var (
		message string
		done    string
		timeout time.Duration
		shell   bool
	)

	c := &cobra.Command{
		Use:     "spin [flags] -- <command> [args...]",
		Short:   "Run a command behind a spinner",
		GroupID: GroupUtility,
		Long: `Run a command while a spinner animates.

The command's stdout is printed once it succeeds; its stderr becomes the
error message when it fails. The command is killed when --timeout elapses
(default from [spinner] timeout in the config, 0 waits forever).`,
		Args: cobra.MinimumNArgs(1),
		Example: `  cliprompt spin -m "Installing" -d "Installed" -- npm ci
  cliprompt spin --shell --timeout 2m -- 'make build && make test'`,
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			cfg := config.FromContext(ctx)
			if !c.Flags().Changed("timeout") {
				timeout = cfg.Spinner.Timeout.Duration
			}
			if message == "" {
				message = strings.Join(args, " ")
			}

			var stdout []byte
			task := func(ctx context.Context) (err error) {
				if shell {
					stdout, err = cmd.ShellContext(ctx, "", strings.Join(args, " "))
				} else {
					stdout, err = cmd.OutputContext(ctx, "", args[0], args[1:]...)
				}
				return err
			}

			s := newSession(ctx)
			err := s.run(func() error {
				return reportSpinError(s, s.RunWithSpinner(ctx, message, done, timeout, task), args[0], timeout)
			})
			if err != nil {
				return err
			}

			output.FromContext(ctx).Print(string(stdout))
			return nil
		},
	}

	c.Flags().StringVarP(&message, "message", "m", "", "Text next to the spinner (default: the command line)")
	c.Flags().StringVarP(&done, "done", "d", "Done", "Text of the success line")
	c.Flags().DurationVarP(&timeout, "timeout", "t", 0, "Kill the command after this long (default from config)")
	c.Flags().BoolVarP(&shell, "shell", "s", false, "Run the arguments as one sh -c script")
	return c
}

// reportSpinError draws a terminal line for a failed run and marks the
// error as reported.
func reportSpinError(s *session, err error, name string, timeout time.Duration) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, progress.ErrTaskTimedOut):
		_ = s.Cancel(fmt.Sprintf("%s timed out after %s", name, timeout))
	case errors.Is(err, context.Canceled):
		_ = s.Cancel("Operation cancelled.")
	case errors.Is(err, progress.ErrTaskJoinFailed):
		_ = s.Log(err.Error(), prompt.LogError)
	default:
		return err
	}
	return &reportedError{err: err}
}

// reportedError marks an error the user has already seen on the terminal.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
