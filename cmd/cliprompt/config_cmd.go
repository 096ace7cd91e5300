package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/config"
	"github.com/raphi011/cliprompt/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage cliprompt configuration.

Global config: ~/.config/cliprompt/config.toml (or $CLIPROMPT_CONFIG)
Local config:  .cliprompt.toml (in the working directory)`,
		Example: `  cliprompt config init          # Create default global config
  cliprompt config init --local  # Create local config in this directory
  cliprompt config show          # Show effective config
  cliprompt config path          # Print the global config path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force bool
		local bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates global config at ~/.config/cliprompt/config.toml.
With --local, creates .cliprompt.toml in the current directory.`,
		Example: `  cliprompt config init           # Create global config
  cliprompt config init --local   # Create local config
  cliprompt config init -f        # Overwrite existing config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				path string
				err  error
			)
			if local {
				dir, werr := os.Getwd()
				if werr != nil {
					return werr
				}
				path, err = config.InitLocal(dir, force)
			} else {
				path, err = config.Init(force)
			}
			if err != nil {
				return fmt.Errorf("%w (use -f to overwrite)", err)
			}

			output.FromContext(cmd.Context()).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVar(&local, "local", false, "Create .cliprompt.toml in the current directory instead")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long:  `Show the configuration after merging the global file, the local file, environment variables and flags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return config.FromContext(ctx).Encode(output.FromContext(ctx).Writer())
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the global config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Println(path)
			return nil
		},
	}
}
