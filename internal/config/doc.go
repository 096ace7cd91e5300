// Package config handles loading and validation of cliprompt configuration.
//
// Configuration is read from ~/.config/cliprompt/config.toml, optionally
// overlaid by a .cliprompt.toml in the working directory, with environment
// variable overrides on top.
//
// # Configuration Sources (highest priority first)
//
//   - NO_COLOR env var: any non-empty value forces theme "none"
//   - CLIPROMPT_THEME env var: theme name
//   - CLIPROMPT_UNICODE env var: "auto", "always" or "never"
//   - .cliprompt.toml in the working directory
//   - Global config file (CLIPROMPT_CONFIG overrides its path)
//   - Default values
//
// # Key Settings
//
//   - unicode: glyph set selection (default: "auto")
//   - [theme] name, mode and per-color overrides
//   - [spinner] style, frame interval and default task timeout
//
// Durations are written as Go duration strings ("500ms", "30s").
package config
