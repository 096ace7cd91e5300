package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/ui/prompt"
)

// messageCmd builds a command that draws a single message from its args.
func messageCmd(use, short, example string, draw func(s *session, msg string) error) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <message>...",
		Short:   short,
		GroupID: GroupMessage,
		Args:    cobra.MinimumNArgs(1),
		Example: example,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(cmd.Context())
			return s.run(func() error {
				return draw(s, strings.Join(args, " "))
			})
		},
	}
}

func newIntroCmd() *cobra.Command {
	return messageCmd("intro", "Open a prompt session", `  cliprompt intro "create-my-app"`,
		func(s *session, msg string) error { return s.Intro(msg) })
}

func newOutroCmd() *cobra.Command {
	return messageCmd("outro", "Close a prompt session", `  cliprompt outro "You're all set!"`,
		func(s *session, msg string) error { return s.Outro(msg) })
}

func newCancelCmd() *cobra.Command {
	return messageCmd("cancel", "Close a prompt session as cancelled", `  cliprompt cancel "Operation cancelled."`,
		func(s *session, msg string) error { return s.Cancel(msg) })
}

func newLogCmd() *cobra.Command {
	var level string

	cmd := messageCmd("log", "Print a marked log line", `  cliprompt log "Installing dependencies"
  cliprompt log --level warn "No lockfile found"
  cliprompt log -l error "Build failed"`, nil)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := prompt.ParseLogLevel(level)
		if err != nil {
			return err
		}
		s := newSession(cmd.Context())
		return s.run(func() error {
			return s.Log(strings.Join(args, " "), lvl)
		})
	}

	cmd.Flags().StringVarP(&level, "level", "l", "info", "Log level: info, warn or error")
	_ = cmd.RegisterFlagCompletionFunc("level", cobra.FixedCompletions([]string{"info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp))
	return cmd
}

func newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "note <line>...",
		Short:   "Print lines inside a box",
		GroupID: GroupMessage,
		Long: `Print lines inside a box.

Each argument becomes one line of the box. A literal "\n" inside an
argument also starts a new line.`,
		Args: cobra.MinimumNArgs(1),
		Example: `  cliprompt note "cd my-app" "npm run dev"
  cliprompt note 'Next steps:\n  cd my-app'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]string, len(args))
			for i, a := range args {
				lines[i] = strings.ReplaceAll(a, `\n`, "\n")
			}
			s := newSession(cmd.Context())
			return s.run(func() error {
				return s.Note(strings.Join(lines, "\n"))
			})
		},
	}
	return cmd
}
