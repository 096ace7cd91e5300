package config

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// Valid enum values for configuration fields.
var (
	ValidUnicodeModes = []string{styles.UnicodeAuto, styles.UnicodeAlways, styles.UnicodeNever}
	ValidThemeModes   = []string{"light", "dark", "auto"}
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateUnicodeMode validates a unicode mode value against ValidUnicodeModes.
// Exported for use in CLI flag validation.
func ValidateUnicodeMode(mode string) error {
	return validateEnum(mode, "unicode", ValidUnicodeModes)
}

// ValidateThemeName validates a theme name against the known presets.
// Exported for use in CLI flag validation.
func ValidateThemeName(name string) error {
	return validateEnum(name, "theme.name", styles.ThemeNames())
}

// Validate checks every field. Empty values are accepted and mean "default".
func (c Config) Validate() error {
	if err := ValidateUnicodeMode(c.Unicode); err != nil {
		return err
	}
	if err := ValidateThemeName(c.Theme.Name); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	colors := []struct{ field, value string }{
		{"theme.primary", c.Theme.Primary},
		{"theme.accent", c.Theme.Accent},
		{"theme.success", c.Theme.Success},
		{"theme.error", c.Theme.Error},
		{"theme.warning", c.Theme.Warning},
	}
	for _, col := range colors {
		if err := validateColor(col.value, col.field); err != nil {
			return err
		}
	}
	if err := validateEnum(c.Spinner.Style, "spinner.style", styles.SpinnerStyles()); err != nil {
		return err
	}
	if c.Spinner.Interval.Duration < 0 {
		return fmt.Errorf("invalid spinner.interval %q: must not be negative", c.Spinner.Interval)
	}
	if c.Spinner.Timeout.Duration < 0 {
		return fmt.Errorf("invalid spinner.timeout %q: must not be negative", c.Spinner.Timeout)
	}
	return nil
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateColor accepts "#rgb", "#rrggbb" or an ANSI index 0-255.
func validateColor(value, field string) error {
	if value == "" || hexColor.MatchString(value) {
		return nil
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return nil
	}
	return fmt.Errorf("invalid %s %q: must be a hex color (#rrggbb) or an ANSI index (0-255)", field, value)
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
