package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/output"
	"github.com/raphi011/cliprompt/internal/ui/prompt"
)

// answerFlags are shared by commands that print an answer.
type answerFlags struct {
	copy bool
	json bool
}

func (f *answerFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.copy, "copy", "c", false, "Copy the answer to the clipboard")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the answer as JSON")
}

type optionJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func toJSON(opts []prompt.SelectOption) []optionJSON {
	out := make([]optionJSON, len(opts))
	for i, o := range opts {
		out[i] = optionJSON{Value: o.Value, Label: o.Label}
	}
	return out
}

func newTextCmd() *cobra.Command {
	var af answerFlags

	cmd := &cobra.Command{
		Use:     "text <message>",
		Short:   "Ask for a line of text",
		GroupID: GroupPrompt,
		Args:    cobra.ExactArgs(1),
		Example: `  name=$(cliprompt text "What is your name?")`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := newSession(ctx)

			var answer string
			if err := s.run(func() (err error) {
				answer, err = s.Text(args[0])
				return err
			}); err != nil {
				return err
			}
			return printAnswer(ctx, af, []string{answer}, answer)
		},
	}

	af.register(cmd)
	return cmd
}

func newConfirmCmd() *cobra.Command {
	var (
		af       answerFlags
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:     "confirm [message]",
		Short:   "Ask a yes/no question",
		GroupID: GroupPrompt,
		Long: `Ask a yes/no question. Prints "true" or "false".

With --exit-code nothing is printed; the command exits 0 for yes and 1 for no.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  cliprompt confirm "Install dependencies?" --exit-code && npm install
  ok=$(cliprompt confirm)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := newSession(ctx)

			message := ""
			if len(args) > 0 {
				message = args[0]
			}

			var yes bool
			if err := s.run(func() (err error) {
				yes, err = s.Confirm(message)
				return err
			}); err != nil {
				return err
			}

			if exitCode {
				if !yes {
					return errDeclined
				}
				return nil
			}
			return printAnswer(ctx, af, []string{strconv.FormatBool(yes)}, yes)
		},
	}

	af.register(cmd)
	cmd.Flags().BoolVarP(&exitCode, "exit-code", "e", false, "Report the answer through the exit code")
	return cmd
}

// errDeclined is returned by confirm --exit-code when the answer is no.
var errDeclined = errors.New("declined")

func newSelectCmd() *cobra.Command {
	var (
		af     answerFlags
		filter string
		label  bool
	)

	cmd := &cobra.Command{
		Use:     "select <message> <option>...",
		Short:   "Choose one option",
		GroupID: GroupPrompt,
		Long: `Choose one option with the arrow keys.

Options are "value=label" or just "label". The value of the chosen option
is printed (the label with --label).`,
		Args: cobra.MinimumNArgs(2),
		Example: `  lang=$(cliprompt select "Language?" go=Go rs=Rust ts=TypeScript)
  cliprompt select "Branch?" $(git branch --format='%(refname:short)') --filter feat`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := filterOptions(filter, parseOptions(args[1:]))
			if len(opts) == 0 {
				return fmt.Errorf("no options match %q", filter)
			}

			s := newSession(ctx)
			var chosen prompt.SelectOption
			if err := s.run(func() (err error) {
				chosen, err = s.Select(args[0], opts)
				return err
			}); err != nil {
				return err
			}

			text := chosen.Value
			if label {
				text = chosen.Label
			}
			return printAnswer(ctx, af, []string{text}, toJSON([]prompt.SelectOption{chosen})[0])
		},
	}

	af.register(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only offer options fuzzy-matching this query")
	cmd.Flags().BoolVar(&label, "label", false, "Print the label instead of the value")
	return cmd
}

func newMultiSelectCmd() *cobra.Command {
	var (
		af         answerFlags
		filter     string
		maxChoices int
	)

	cmd := &cobra.Command{
		Use:     "multiselect <message> <option>...",
		Short:   "Choose several options",
		GroupID: GroupPrompt,
		Aliases: []string{"multi"},
		Long: `Choose several options.

Enter toggles the option under the cursor; choose "confirm" to submit.
With --max, options beyond the limit cannot be checked.
The values of the chosen options are printed one per line.`,
		Args:    cobra.MinimumNArgs(2),
		Example: `  cliprompt multiselect "Tools?" eslint prettier jest --max 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := filterOptions(filter, parseOptions(args[1:]))
			if len(opts) == 0 {
				return fmt.Errorf("no options match %q", filter)
			}

			limit := maxChoices
			if !cmd.Flags().Changed("max") {
				limit = len(opts)
			}

			s := newSession(ctx)
			var chosen []prompt.SelectOption
			if err := s.run(func() (err error) {
				chosen, err = s.MultiSelectMax(args[0], opts, limit)
				return err
			}); err != nil {
				return err
			}

			values := make([]string, len(chosen))
			for i, o := range chosen {
				values[i] = o.Value
			}
			return printAnswer(ctx, af, values, toJSON(chosen))
		},
	}

	af.register(cmd)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only offer options fuzzy-matching this query")
	cmd.Flags().IntVarP(&maxChoices, "max", "m", 0, "Maximum number of options that can be chosen")
	return cmd
}

// printAnswer writes the answer lines to stdout, or jsonValue with --json.
// --copy copies the lines joined by newlines.
func printAnswer(ctx context.Context, af answerFlags, lines []string, jsonValue any) error {
	if af.copy {
		copyAnswer(ctx, strings.Join(lines, "\n"))
	}

	out := output.FromContext(ctx)
	if af.json {
		return out.JSON(jsonValue)
	}
	out.Lines(lines)
	return nil
}
