package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Decorator transforms a string for display, typically by wrapping it in
// SGR sequences.
type Decorator func(string) string

func plain(s string) string { return s }

// Palette holds the decorators prompts apply to markers and messages.
type Palette struct {
	Question Decorator // step marker in front of a question
	Active   Decorator // radio button under the cursor
	Checked  Decorator // selected checkbox
	Info     Decorator
	Warn     Decorator
	Error    Decorator
	Cancel   Decorator // cancel message text
	Success  Decorator // completion marker
	Spinner  Decorator // spinner frame
}

// PlainPalette returns a palette that leaves every string unchanged.
func PlainPalette() Palette {
	return Palette{
		Question: plain,
		Active:   plain,
		Checked:  plain,
		Info:     plain,
		Warn:     plain,
		Error:    plain,
		Cancel:   plain,
		Success:  plain,
		Spinner:  plain,
	}
}

// NewPalette builds lipgloss-backed decorators from a theme.
func NewPalette(t Theme) Palette {
	fg := func(c color.Color) Decorator {
		style := lipgloss.NewStyle().Foreground(c)
		return func(s string) string { return style.Render(s) }
	}
	return Palette{
		Question: fg(t.Accent),
		Active:   fg(t.Success),
		Checked:  fg(t.Primary),
		Info:     fg(t.Primary),
		Warn:     fg(t.Warning),
		Error:    fg(t.Error),
		Cancel:   fg(t.Error),
		Success:  fg(t.Success),
		Spinner:  fg(t.Accent),
	}
}
