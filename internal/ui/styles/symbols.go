package styles

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Symbols holds the marker glyphs used by prompts.
type Symbols struct {
	BarStart          string
	Bar               string
	BarH              string
	BarEnd            string
	RadioActive       string
	RadioInactive     string
	StepSubmit        string
	Info              string
	Success           string
	Warn              string
	Error             string
	CornerTopRight    string
	CornerBottomRight string
	ConnectLeft       string
	CheckboxActive    string
	CheckboxInactive  string
	SpinnerFrames     []string
}

// unicodeSymbols is used when the terminal can render box drawing and
// geometric shapes.
var unicodeSymbols = Symbols{
	BarStart:          "┌",
	Bar:               "│",
	BarH:              "─",
	BarEnd:            "└",
	RadioActive:       "●",
	RadioInactive:     "○",
	StepSubmit:        "◇",
	Info:              "●",
	Success:           "◆",
	Warn:              "▲",
	Error:             "■",
	CornerTopRight:    "╮",
	CornerBottomRight: "╯",
	ConnectLeft:       "├",
	CheckboxActive:    "◼",
	CheckboxInactive:  "◻",
	SpinnerFrames:     []string{"◒", "◐", "◓", "◑"},
}

// asciiSymbols is the fallback set.
var asciiSymbols = Symbols{
	BarStart:          "T",
	Bar:               "|",
	BarH:              "-",
	BarEnd:            "—",
	RadioActive:       ">",
	RadioInactive:     " ",
	StepSubmit:        "o",
	Info:              "•",
	Success:           "*",
	Warn:              "!",
	Error:             "x",
	CornerTopRight:    "+",
	CornerBottomRight: "+",
	ConnectLeft:       "+",
	CheckboxActive:    "[+]",
	CheckboxInactive:  "[ ]",
	SpinnerFrames:     []string{"•", "o", "O", "0"},
}

// NewSymbols returns the unicode set or the ASCII fallback.
func NewSymbols(unicode bool) Symbols {
	s := asciiSymbols
	if unicode {
		s = unicodeSymbols
	}
	s.SpinnerFrames = append([]string(nil), s.SpinnerFrames...)
	return s
}

// Unicode modes accepted by [ResolveUnicode].
const (
	UnicodeAuto   = "auto"
	UnicodeAlways = "always"
	UnicodeNever  = "never"
)

// ResolveUnicode decides whether unicode glyphs should be used on out.
// "always" and "never" are taken literally; anything else detects.
func ResolveUnicode(mode string, out *os.File) bool {
	switch mode {
	case UnicodeAlways:
		return true
	case UnicodeNever:
		return false
	}
	if out == nil || !(isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())) {
		return false
	}
	return unicodeFromEnv(os.Getenv)
}

// unicodeFromEnv inspects the terminal type and locale.
func unicodeFromEnv(getenv func(string) string) bool {
	switch getenv("TERM") {
	case "linux", "dumb":
		return false
	}

	// Terminals that always render unicode regardless of locale.
	if getenv("WT_SESSION") != "" || getenv("TERM_PROGRAM") == "vscode" {
		return true
	}

	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := getenv(key)
		if v == "" {
			continue
		}
		v = strings.ToLower(v)
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	return false
}
