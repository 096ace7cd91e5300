package prompt

import (
	"fmt"
	"strings"
)

// SelectOption is one entry of a select or multi-select prompt. Value is
// returned to the caller, Label is displayed.
type SelectOption struct {
	Value string
	Label string
}

// NewSelectOption creates an option.
func NewSelectOption(value, label string) SelectOption {
	return SelectOption{Value: value, Label: label}
}

// ParseSelectOption parses "value=label". Without "=" the text is used for
// both.
func ParseSelectOption(s string) SelectOption {
	if value, label, ok := strings.Cut(s, "="); ok && value != "" {
		return SelectOption{Value: value, Label: label}
	}
	return SelectOption{Value: s, Label: s}
}

func (o SelectOption) String() string {
	return fmt.Sprintf("%s <%s>", o.Value, o.Label)
}
