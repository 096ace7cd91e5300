package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// LocalConfigFileName is the per-directory override file.
const LocalConfigFileName = ".cliprompt.toml"

// LocalConfig holds per-directory overrides from .cliprompt.toml.
// Zero values and nil pointers mean "not set" (inherit from global).
type LocalConfig struct {
	Unicode string       `toml:"unicode"`
	Theme   ThemeConfig  `toml:"theme"`
	Spinner LocalSpinner `toml:"spinner"`
}

// LocalSpinner holds local spinner overrides
type LocalSpinner struct {
	Style    string    `toml:"style"`
	Interval *Duration `toml:"interval"`
	Timeout  *Duration `toml:"timeout"`
}

// LoadLocal reads .cliprompt.toml from dir.
// Returns nil (no error) if dir is empty or the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(dir string) (*LocalConfig, error) {
	if dir == "" {
		return nil, nil
	}
	configFile := filepath.Join(dir, LocalConfigFileName)

	data, err := os.ReadFile(configFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read local config %s: %w", configFile, err)
	}

	var local LocalConfig
	if err := toml.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse local config %s: %w", configFile, err)
	}

	// Validate through the merged view so local files get the same checks.
	if err := MergeLocal(Config{}, &local).Validate(); err != nil {
		return nil, fmt.Errorf("%w in %s", err, configFile)
	}

	return &local, nil
}

// defaultLocalConfig is the template for cliprompt config init --local
const defaultLocalConfig = `# cliprompt local config (per-directory overrides)
# Settings here override ~/.config/cliprompt/config.toml when cliprompt
# runs in this directory.

# unicode = "always"

# [theme]
# name = "nord"
# accent = "#b48ead"

# [spinner]
# style = "dot"
# interval = "100ms"
# timeout = "2m"
`

// InitLocal writes a commented .cliprompt.toml into dir.
// Returns the path to the created file
func InitLocal(dir string, force bool) (string, error) {
	path := filepath.Join(dir, LocalConfigFileName)
	return path, writeTemplate(path, defaultLocalConfig, force)
}
