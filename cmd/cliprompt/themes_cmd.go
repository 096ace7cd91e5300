package main

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/config"
	"github.com/raphi011/cliprompt/internal/output"
	"github.com/raphi011/cliprompt/internal/ui/static"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "themes",
		Short:   "List color themes and spinner styles",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `List the color themes and spinner styles accepted in the config.

Each theme shows a swatch of its primary, accent, success, error and
warning colors (dark variant where available).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			plain := cfg.Theme.Name == styles.ThemeNone
			out := output.FromContext(ctx)

			out.Print(static.Table([]string{"THEME", "VARIANTS", "COLORS"}, themeRows(plain), plain))
			out.Println()
			out.Print(static.Table([]string{"SPINNER", "FRAMES"}, spinnerRows(), plain))
			return nil
		},
	}
}

func themeRows(plain bool) [][]string {
	var rows [][]string
	for _, name := range styles.ThemeNames() {
		variants := styles.ThemeVariants(name)
		if name == styles.ThemeNone {
			rows = append(rows, []string{name, "-", "no colors"})
			continue
		}

		mode := "dark"
		if !slices.Contains(variants, "dark") {
			mode = "light"
		}
		swatch := "■ ■ ■ ■ ■"
		if !plain {
			theme, err := styles.SelectTheme(name, mode, styles.Overrides{})
			if err == nil {
				pal := styles.NewPalette(theme)
				swatch = strings.Join([]string{
					pal.Info("■"), pal.Question("■"), pal.Success("■"), pal.Error("■"), pal.Warn("■"),
				}, " ")
			}
		}
		rows = append(rows, []string{name, strings.Join(variants, ", "), swatch})
	}
	return rows
}

func spinnerRows() [][]string {
	sym := styles.NewSymbols(true)
	var rows [][]string
	for _, style := range styles.SpinnerStyles() {
		rows = append(rows, []string{style, strings.Join(sym.SpinnerFramesFor(style, true), " ")})
	}
	return rows
}
