package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/raphi011/cliprompt/internal/log"
	"github.com/raphi011/cliprompt/internal/term"
	"github.com/raphi011/cliprompt/internal/ui/prompt"
	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// parseOptions converts "value=label" or "label" arguments to options.
func parseOptions(args []string) []prompt.SelectOption {
	opts := make([]prompt.SelectOption, len(args))
	for i, a := range args {
		opts[i] = prompt.ParseSelectOption(a)
	}
	return opts
}

// optionSource implements fuzzy.Source for options, matching on labels.
type optionSource []prompt.SelectOption

func (s optionSource) String(i int) string { return s[i].Label }
func (s optionSource) Len() int            { return len(s) }

// filterOptions narrows options to fuzzy matches of query, best match first.
// An empty query keeps all options in input order.
func filterOptions(query string, opts []prompt.SelectOption) []prompt.SelectOption {
	if query == "" {
		return opts
	}
	matches := fuzzy.FindFrom(query, optionSource(opts))
	out := make([]prompt.SelectOption, len(matches))
	for i, m := range matches {
		out[i] = opts[m.Index]
	}
	return out
}

// parseKeys parses the --keys flag. Unknown key names are rejected.
func parseKeys(list string) ([]term.Key, error) {
	keys := term.ParseKeys(list)
	for i, name := range nonEmpty(strings.Split(list, ",")) {
		if keys[i] == term.KeyUnknown && strings.TrimSpace(strings.ToLower(name)) != "unknown" {
			return nil, fmt.Errorf("invalid key %q in --keys", strings.TrimSpace(name))
		}
	}
	return keys, nil
}

func nonEmpty(parts []string) []string {
	out := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// copyAnswer copies s to the clipboard, warning on failure.
func copyAnswer(ctx context.Context, s string) {
	if err := clipboard.WriteAll(s); err != nil {
		log.FromContext(ctx).Printf("Warning: failed to copy to clipboard: %v\n", err)
	}
}

// completeThemes completes --theme values.
func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return styles.ThemeNames(), cobra.ShellCompDirectiveNoFileComp
}
