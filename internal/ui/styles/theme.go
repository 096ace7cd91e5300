package styles

import (
	"fmt"
	"image/color"
	"os"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for prompt components
type Theme struct {
	Primary color.Color // checked boxes, info markers
	Accent  color.Color // question markers, spinner frames
	Success color.Color // active radio, completion marker
	Error   color.Color // error log lines, cancel message
	Warning color.Color // warn log lines
}

// themeFamily groups light and dark variants of a theme
type themeFamily struct {
	Light *Theme // nil if no light variant
	Dark  *Theme // nil if no dark variant
}

// Preset themes - Dark variants
var (
	// DefaultTheme mirrors the classic ANSI palette (works on both backgrounds)
	DefaultTheme = Theme{
		Primary: lipgloss.Color("4"), // blue
		Accent:  lipgloss.Color("5"), // magenta
		Success: lipgloss.Color("2"), // green
		Error:   lipgloss.Color("1"), // red
		Warning: lipgloss.Color("3"), // yellow
	}

	// DraculaTheme is based on the Dracula color scheme (dark only)
	DraculaTheme = Theme{
		Primary: lipgloss.Color("#bd93f9"), // purple
		Accent:  lipgloss.Color("#ff79c6"), // pink
		Success: lipgloss.Color("#50fa7b"), // green
		Error:   lipgloss.Color("#ff5555"), // red
		Warning: lipgloss.Color("#ffb86c"), // orange
	}

	// NordTheme is based on the Nord color scheme (dark)
	NordTheme = Theme{
		Primary: lipgloss.Color("#88c0d0"), // nord8
		Accent:  lipgloss.Color("#b48ead"), // nord15
		Success: lipgloss.Color("#a3be8c"), // nord14
		Error:   lipgloss.Color("#bf616a"), // nord11
		Warning: lipgloss.Color("#ebcb8b"), // nord13
	}

	// GruvboxTheme is based on the Gruvbox color scheme (dark)
	GruvboxTheme = Theme{
		Primary: lipgloss.Color("#83a598"),
		Accent:  lipgloss.Color("#d3869b"),
		Success: lipgloss.Color("#b8bb26"),
		Error:   lipgloss.Color("#fb4934"),
		Warning: lipgloss.Color("#fabd2f"),
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha (dark)
	CatppuccinMochaTheme = Theme{
		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),
		Success: lipgloss.Color("#a6e3a1"),
		Error:   lipgloss.Color("#f38ba8"),
		Warning: lipgloss.Color("#fab387"),
	}
)

// Preset themes - Light variants
var (
	NordLightTheme = Theme{
		Primary: lipgloss.Color("#5e81ac"),
		Accent:  lipgloss.Color("#b48ead"),
		Success: lipgloss.Color("#a3be8c"),
		Error:   lipgloss.Color("#bf616a"),
		Warning: lipgloss.Color("#d08770"),
	}

	GruvboxLightTheme = Theme{
		Primary: lipgloss.Color("#076678"),
		Accent:  lipgloss.Color("#8f3f71"),
		Success: lipgloss.Color("#79740e"),
		Error:   lipgloss.Color("#9d0006"),
		Warning: lipgloss.Color("#b57614"),
	}

	CatppuccinLatteTheme = Theme{
		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),
		Success: lipgloss.Color("#40a02b"),
		Error:   lipgloss.Color("#d20f39"),
		Warning: lipgloss.Color("#fe640b"),
	}
)

// ThemeNone is the theme name that disables colors entirely.
const ThemeNone = "none"

// themeFamilies maps theme family names to their light/dark variants
var themeFamilies = map[string]themeFamily{
	"default":    {Light: &DefaultTheme, Dark: &DefaultTheme},
	"dracula":    {Dark: &DraculaTheme},
	"nord":       {Light: &NordLightTheme, Dark: &NordTheme},
	"gruvbox":    {Light: &GruvboxLightTheme, Dark: &GruvboxTheme},
	"catppuccin": {Light: &CatppuccinLatteTheme, Dark: &CatppuccinMochaTheme},
}

// ThemeNames returns the accepted theme names, "none" included.
func ThemeNames() []string {
	names := []string{ThemeNone}
	for name := range themeFamilies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ThemeVariants returns the variants ("light", "dark") a theme ships with.
// Unknown names and "none" have none.
func ThemeVariants(name string) []string {
	family, ok := themeFamilies[name]
	if !ok {
		return nil
	}
	var variants []string
	if family.Light != nil {
		variants = append(variants, "light")
	}
	if family.Dark != nil {
		variants = append(variants, "dark")
	}
	return variants
}

// Overrides replaces individual theme colors. Empty fields keep the preset.
type Overrides struct {
	Primary string
	Accent  string
	Success string
	Error   string
	Warning string
}

// SelectTheme picks a preset by name and mode ("light", "dark" or "auto")
// and applies color overrides. Auto mode queries the terminal background.
func SelectTheme(name, mode string, o Overrides) (Theme, error) {
	if name == "" {
		name = "default"
	}
	family, ok := themeFamilies[name]
	if !ok {
		return DefaultTheme, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(ThemeNames(), ", "))
	}

	var theme *Theme
	switch mode {
	case "light":
		theme = family.Light
	case "dark":
		theme = family.Dark
	case "", "auto":
		if lipgloss.HasDarkBackground(os.Stdin, os.Stderr) {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	default:
		return DefaultTheme, fmt.Errorf("unknown theme mode %q (available: light, dark, auto)", mode)
	}

	// Fall back if the requested variant doesn't exist
	if theme == nil {
		if family.Dark != nil {
			theme = family.Dark
		} else {
			theme = family.Light
		}
	}

	t := *theme
	if o.Primary != "" {
		t.Primary = lipgloss.Color(o.Primary)
	}
	if o.Accent != "" {
		t.Accent = lipgloss.Color(o.Accent)
	}
	if o.Success != "" {
		t.Success = lipgloss.Color(o.Success)
	}
	if o.Error != "" {
		t.Error = lipgloss.Color(o.Error)
	}
	if o.Warning != "" {
		t.Warning = lipgloss.Color(o.Warning)
	}
	return t, nil
}
