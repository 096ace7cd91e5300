// Package styles resolves the glyphs and colours prompts render with.
//
// Nothing here is global. A [Symbols] table and a [Palette] are resolved once,
// when the prompter is constructed, and passed to every render call:
//
//   - [NewSymbols] picks the unicode glyph or its ASCII fallback for each UI
//     marker (bars, corners, radio buttons, checkboxes, spinner frames).
//   - [NewPalette] turns a [Theme] into string decorators backed by lipgloss
//     styles. [PlainPalette] leaves strings untouched, which keeps output
//     byte-exact in tests and when colours are disabled.
package styles
