package styles

import (
	"slices"

	"charm.land/bubbles/v2/spinner"
)

// SpinnerClassic is the four-frame spinner from the symbol table.
const SpinnerClassic = "classic"

var spinnerPresets = map[string]spinner.Spinner{
	"dot":     spinner.Dot,
	"line":    spinner.Line,
	"minidot": spinner.MiniDot,
	"pulse":   spinner.Pulse,
	"points":  spinner.Points,
}

// SpinnerStyles returns the accepted spinner style names.
func SpinnerStyles() []string {
	names := []string{SpinnerClassic}
	for name := range spinnerPresets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SpinnerFramesFor returns the animation frames for a style. Non-classic styles
// use unicode glyphs, so without unicode support (and for unknown names) the
// symbol table's frames are used. "line" is plain ASCII and always allowed.
func (s Symbols) SpinnerFramesFor(style string, unicode bool) []string {
	preset, ok := spinnerPresets[style]
	if !ok || (!unicode && style != "line") {
		return slices.Clone(s.SpinnerFrames)
	}
	return slices.Clone(preset.Frames)
}
