package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/ui/prompt"
)

func newDemoCmd() *cobra.Command {
	var work time.Duration

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Walk through every prompt",
		GroupID: GroupUtility,
		Args:    cobra.NoArgs,
		Example: `  cliprompt demo
  cliprompt demo --input Ash --keys enter,down,enter,down,down,down,enter --work 0s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := newSession(ctx)
			return s.run(func() error {
				return runDemo(ctx, s.Prompter, work)
			})
		},
	}

	cmd.Flags().DurationVar(&work, "work", 2*time.Second, "How long the spinner step pretends to work")
	return cmd
}

// runDemo is the example flow: every widget once.
func runDemo(ctx context.Context, p *prompt.Prompter, work time.Duration) error {
	if err := p.Intro("cliprompt demo"); err != nil {
		return err
	}

	name, err := p.Text("Enter your name")
	if err != nil {
		return err
	}

	ok, err := p.Confirm("Are you sure?")
	if err != nil {
		return err
	}
	if !ok {
		return p.Cancel("Operation cancelled")
	}

	starter, err := p.Select("Which one do you prefer?", []prompt.SelectOption{
		prompt.NewSelectOption("option1", "Pikachu"),
		prompt.NewSelectOption("option2", "Charmander"),
		prompt.NewSelectOption("option3", "Squirtle"),
	})
	if err != nil {
		return err
	}
	if err := p.Log(starter.String(), prompt.LogInfo); err != nil {
		return err
	}

	items, err := p.MultiSelectMax("Pack two items", []prompt.SelectOption{
		prompt.NewSelectOption("potion", "Potion"),
		prompt.NewSelectOption("ball", "Poké Ball"),
		prompt.NewSelectOption("repel", "Repel"),
	}, 2)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		if err := p.Log("Travelling light", prompt.LogWarn); err != nil {
			return err
		}
	}

	if err := p.Note("Trainer: " + name + "\nPartner: " + starter.Label); err != nil {
		return err
	}

	err = p.RunWithSpinner(ctx, "Preparing your journey", "Ready!", 10*work+time.Second, func(ctx context.Context) error {
		select {
		case <-time.After(work):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
	if err != nil {
		return err
	}

	return p.Outro("Good Bye")
}
