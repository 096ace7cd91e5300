package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/config"
	"github.com/raphi011/cliprompt/internal/log"
	"github.com/raphi011/cliprompt/internal/output"
	"github.com/raphi011/cliprompt/internal/term"
)

// globalFlags holds flags shared by every command.
type globalFlags struct {
	verbose bool
	quiet   bool
	unicode string
	theme   string
	keys    string
	input   string
}

// Command group IDs for organizing help output
const (
	GroupMessage = "message"
	GroupPrompt  = "prompt"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// errCancelled is returned when the user aborts a prompt with Ctrl+C.
var errCancelled = errors.New("cancelled")

// newRootCmd builds the command tree. Flags are bound to a fresh
// globalFlags so tests can build independent trees.
func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "cliprompt",
		Short: "Interactive prompts for shell scripts",
		Long: `cliprompt draws interactive prompts on the terminal and prints the answer.

Prompts render on stderr, answers go to stdout, so they compose with
command substitution:

  name=$(cliprompt text "Project name?")
  lang=$(cliprompt select "Language?" go=Go rs=Rust)

Use --keys and --input to replay a prompt without a terminal.`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip setup for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}
			return setup(cmd, flags)
		},
		// Run is not set - shows help when no subcommand provided
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Show diagnostics and commands being executed")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "Suppress all log output")
	pf.StringVar(&flags.unicode, "unicode", "", "Glyph set: auto, always or never (overrides config)")
	pf.StringVar(&flags.theme, "theme", "", "Color theme name (overrides config)")
	pf.StringVar(&flags.keys, "keys", "", "Replay comma separated keys instead of reading the terminal (e.g. down,enter)")
	pf.StringVar(&flags.input, "input", "", "Replay a line of text input instead of reading the terminal")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	_ = rootCmd.RegisterFlagCompletionFunc("unicode", cobra.FixedCompletions(config.ValidUnicodeModes, cobra.ShellCompDirectiveNoFileComp))
	_ = rootCmd.RegisterFlagCompletionFunc("theme", completeThemes)

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupMessage, Title: "Message Commands:"},
		&cobra.Group{ID: GroupPrompt, Title: "Prompt Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Message commands
	rootCmd.AddCommand(newIntroCmd())
	rootCmd.AddCommand(newOutroCmd())
	rootCmd.AddCommand(newCancelCmd())
	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newNoteCmd())

	// Prompt commands
	rootCmd.AddCommand(newTextCmd())
	rootCmd.AddCommand(newConfirmCmd())
	rootCmd.AddCommand(newSelectCmd())
	rootCmd.AddCommand(newMultiSelectCmd())

	// Utility commands
	rootCmd.AddCommand(newSpinCmd())
	rootCmd.AddCommand(newDemoCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// setup validates global flags, loads config and attaches the logger and
// session settings to the command context.
func setup(cmd *cobra.Command, flags *globalFlags) error {
	ctx := cmd.Context()

	if err := config.ValidateUnicodeMode(flags.unicode); err != nil {
		return err
	}
	if err := config.ValidateThemeName(flags.theme); err != nil {
		return err
	}
	keys, err := parseKeys(flags.keys)
	if err != nil {
		return err
	}

	// Create logger (stderr for diagnostics)
	logger := log.New(os.Stderr, flags.verbose, flags.quiet)
	ctx = log.WithLogger(ctx, logger)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(workDir)
	if err != nil {
		logger.Printf("Warning: %v\n", err)
	}
	if flags.unicode != "" {
		cfg.Unicode = flags.unicode
	}
	if flags.theme != "" {
		cfg.Theme.Name = flags.theme
	}
	logger.Debug("config", "unicode", cfg.Unicode, "theme", cfg.Theme.Name, "spinner", cfg.Spinner.Style)
	ctx = config.WithConfig(ctx, &cfg)

	ctx = withReplay(ctx, replay{
		enabled: cmd.Flags().Changed("keys") || cmd.Flags().Changed("input"),
		keys:    keys,
		input:   flags.input,
	})

	cmd.SetContext(ctx)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for answers)
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// A cancelled prompt already drew its cancel line, a declined
		// confirm only reports through the exit code.
		var reported *reportedError
		if !errors.Is(err, errCancelled) && !errors.Is(err, errDeclined) && !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes: 130 for a cancelled prompt
// (the shell convention for SIGINT), 1 otherwise.
func exitCode(err error) int {
	if errors.Is(err, errCancelled) || errors.Is(err, term.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return 130
	}
	return 1
}
