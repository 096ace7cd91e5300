package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/cliprompt/internal/ui/styles"
)

// Duration is a time.Duration read from a TOML string such as "500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ThemeConfig selects a color preset and optional per-color overrides.
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset name or "none"
	Mode    string `toml:"mode"`    // "light", "dark" or "auto"
	Primary string `toml:"primary"` // hex ("#89b4fa") or ANSI index ("4")
	Accent  string `toml:"accent"`
	Success string `toml:"success"`
	Error   string `toml:"error"`
	Warning string `toml:"warning"`
}

// SpinnerConfig holds spinner settings.
type SpinnerConfig struct {
	Style    string   `toml:"style"`
	Interval Duration `toml:"interval"`
	Timeout  Duration `toml:"timeout"`
}

// Config holds the cliprompt configuration
type Config struct {
	Unicode string        `toml:"unicode"`
	Theme   ThemeConfig   `toml:"theme"`
	Spinner SpinnerConfig `toml:"spinner"`
}

// Defaults for empty values.
const (
	DefaultUnicode         = "auto"
	DefaultThemeName       = "default"
	DefaultThemeMode       = "auto"
	DefaultSpinnerStyle    = "classic"
	DefaultSpinnerInterval = 500 * time.Millisecond
	DefaultSpinnerTimeout  = 30 * time.Second
)

// Default returns the default configuration
func Default() Config {
	return Config{
		Unicode: DefaultUnicode,
		Theme: ThemeConfig{
			Name: DefaultThemeName,
			Mode: DefaultThemeMode,
		},
		Spinner: SpinnerConfig{
			Style:    DefaultSpinnerStyle,
			Interval: Duration{DefaultSpinnerInterval},
			Timeout:  Duration{DefaultSpinnerTimeout},
		},
	}
}

// configPath returns the path to the global config file
func configPath() (string, error) {
	if p := os.Getenv("CLIPROMPT_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cliprompt", "config.toml"), nil
}

// Path returns the global config file location.
func Path() (string, error) {
	return configPath()
}

// Load reads the global config, merges .cliprompt.toml from dir (if any)
// and applies environment overrides.
// Returns Default() if no file exists (no error).
// Returns an error only if a file exists but is invalid.
func Load(dir string) (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}

	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}

	local, err := LoadLocal(dir)
	if err != nil {
		return Default(), err
	}
	cfg = MergeLocal(cfg, local)

	cfg = applyEnv(cfg, os.Getenv)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFile reads a single config file without environment overrides.
// A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults replaces values explicitly set to "" in the file.
func (c *Config) fillDefaults() {
	if c.Unicode == "" {
		c.Unicode = DefaultUnicode
	}
	if c.Theme.Name == "" {
		c.Theme.Name = DefaultThemeName
	}
	if c.Theme.Mode == "" {
		c.Theme.Mode = DefaultThemeMode
	}
	if c.Spinner.Style == "" {
		c.Spinner.Style = DefaultSpinnerStyle
	}
	if c.Spinner.Interval.Duration <= 0 {
		c.Spinner.Interval = Duration{DefaultSpinnerInterval}
	}
}

// applyEnv applies environment variable overrides.
func applyEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("CLIPROMPT_UNICODE"); v != "" {
		cfg.Unicode = v
	}
	if v := getenv("CLIPROMPT_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if getenv("NO_COLOR") != "" {
		cfg.Theme.Name = styles.ThemeNone
	}
	return cfg
}

const defaultConfig = `# cliprompt configuration

# Glyph set: "auto" detects from the terminal and locale,
# "always" forces unicode, "never" forces the ASCII fallback.
# Override with CLIPROMPT_UNICODE.
unicode = "auto"

[theme]
# Color preset: none, default, dracula, nord, gruvbox, catppuccin
# Override with CLIPROMPT_THEME. NO_COLOR disables colors entirely.
name = "default"

# Preset variant: light, dark or auto (queries the terminal background)
mode = "auto"

# Per-color overrides, hex ("#89b4fa") or ANSI index ("4")
# primary = ""   # checked boxes, info markers
# accent = ""    # question markers, spinner frames
# success = ""   # active radio buttons, completion marker
# error = ""     # error logs, cancel messages
# warning = ""   # warnings

[spinner]
# Frame set: classic, dot, line, minidot, pulse, points
# Styles other than classic and line need unicode.
style = "classic"

# Delay between frames
interval = "500ms"

# Default task timeout for "cliprompt spin" (0s waits forever)
timeout = "30s"
`

// Init creates a default config file at the global config path.
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", err
	}
	return path, writeTemplate(path, defaultConfig, force)
}

func writeTemplate(path, content string, force bool) error {
	// Check if file already exists (skip if force)
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

// Encode writes cfg as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
