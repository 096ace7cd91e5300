package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Unicode != DefaultUnicode {
		t.Errorf("Unicode = %q, want %q", cfg.Unicode, DefaultUnicode)
	}
	if cfg.Theme.Name != DefaultThemeName || cfg.Theme.Mode != DefaultThemeMode {
		t.Errorf("Theme = %+v, want default/auto", cfg.Theme)
	}
	if cfg.Spinner.Interval.Duration != DefaultSpinnerInterval {
		t.Errorf("Spinner.Interval = %v, want %v", cfg.Spinner.Interval, DefaultSpinnerInterval)
	}
	if cfg.Spinner.Timeout.Duration != DefaultSpinnerTimeout {
		t.Errorf("Spinner.Timeout = %v, want %v", cfg.Spinner.Timeout, DefaultSpinnerTimeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "full file",
			content: `
unicode = "never"

[theme]
name = "nord"
mode = "dark"
accent = "#b48ead"
primary = "4"

[spinner]
style = "line"
interval = "120ms"
timeout = "2m"
`,
			check: func(t *testing.T, cfg Config) {
				if cfg.Unicode != "never" {
					t.Errorf("Unicode = %q", cfg.Unicode)
				}
				if cfg.Theme.Name != "nord" || cfg.Theme.Mode != "dark" || cfg.Theme.Accent != "#b48ead" || cfg.Theme.Primary != "4" {
					t.Errorf("Theme = %+v", cfg.Theme)
				}
				if cfg.Spinner.Style != "line" || cfg.Spinner.Interval.Duration != 120*time.Millisecond || cfg.Spinner.Timeout.Duration != 2*time.Minute {
					t.Errorf("Spinner = %+v", cfg.Spinner)
				}
			},
		},
		{
			name:    "partial file keeps defaults",
			content: "[theme]\nname = \"dracula\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Theme.Name != "dracula" {
					t.Errorf("Theme.Name = %q", cfg.Theme.Name)
				}
				if cfg.Unicode != DefaultUnicode || cfg.Spinner.Interval.Duration != DefaultSpinnerInterval {
					t.Errorf("defaults lost: %+v", cfg)
				}
			},
		},
		{
			name:    "explicit empty values fall back to defaults",
			content: "unicode = \"\"\n[spinner]\nstyle = \"\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Unicode != DefaultUnicode || cfg.Spinner.Style != DefaultSpinnerStyle {
					t.Errorf("cfg = %+v, want defaults", cfg)
				}
			},
		},
		{
			name:    "zero timeout is allowed",
			content: "[spinner]\ntimeout = \"0s\"\n",
			check: func(t *testing.T, cfg Config) {
				if cfg.Spinner.Timeout.Duration != 0 {
					t.Errorf("Timeout = %v, want 0", cfg.Spinner.Timeout)
				}
			},
		},
		{
			name:    "invalid toml",
			content: "unicode = ",
			wantErr: "failed to parse config file",
		},
		{
			name:    "invalid duration",
			content: "[spinner]\ninterval = \"fast\"\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "invalid unicode mode",
			content: "unicode = \"sometimes\"\n",
			wantErr: `invalid unicode "sometimes": must be "auto", "always", or "never"`,
		},
		{
			name:    "unknown theme",
			content: "[theme]\nname = \"solarized\"\n",
			wantErr: `invalid theme.name "solarized"`,
		},
		{
			name:    "invalid theme mode",
			content: "[theme]\nmode = \"dim\"\n",
			wantErr: `invalid theme.mode "dim": must be "light", "dark", or "auto"`,
		},
		{
			name:    "invalid color",
			content: "[theme]\nerror = \"red\"\n",
			wantErr: `invalid theme.error "red"`,
		},
		{
			name:    "ansi index out of range",
			content: "[theme]\nwarning = \"256\"\n",
			wantErr: `invalid theme.warning "256"`,
		},
		{
			name:    "unknown spinner style",
			content: "[spinner]\nstyle = \"bounce\"\n",
			wantErr: `invalid spinner.style "bounce"`,
		},
		{
			name:    "negative timeout",
			content: "[spinner]\ntimeout = \"-1s\"\n",
			wantErr: "invalid spinner.timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFile(t, t.TempDir(), "config.toml", tt.content)
			cfg, err := LoadFile(path)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want it to contain %q", err, tt.wantErr)
				}
				if cfg != Default() {
					t.Errorf("LoadFile() = %+v on error, want defaults", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		env         map[string]string
		wantUnicode string
		wantTheme   string
	}{
		{
			name:        "no overrides",
			wantUnicode: DefaultUnicode,
			wantTheme:   DefaultThemeName,
		},
		{
			name:        "unicode and theme",
			env:         map[string]string{"CLIPROMPT_UNICODE": "never", "CLIPROMPT_THEME": "gruvbox"},
			wantUnicode: "never",
			wantTheme:   "gruvbox",
		},
		{
			name:        "NO_COLOR wins over theme",
			env:         map[string]string{"CLIPROMPT_THEME": "gruvbox", "NO_COLOR": "1"},
			wantUnicode: DefaultUnicode,
			wantTheme:   "none",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := applyEnv(Default(), func(k string) string { return tt.env[k] })
			if cfg.Unicode != tt.wantUnicode || cfg.Theme.Name != tt.wantTheme {
				t.Errorf("applyEnv() = (%q, %q), want (%q, %q)", cfg.Unicode, cfg.Theme.Name, tt.wantUnicode, tt.wantTheme)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	global := writeFile(t, t.TempDir(), "config.toml", "[theme]\nname = \"nord\"\n[spinner]\nstyle = \"dot\"\n")
	dir := t.TempDir()
	writeFile(t, dir, LocalConfigFileName, "[spinner]\nstyle = \"line\"\n")

	t.Setenv("CLIPROMPT_CONFIG", global)
	t.Setenv("CLIPROMPT_UNICODE", "always")
	t.Setenv("CLIPROMPT_THEME", "")
	t.Setenv("NO_COLOR", "")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Theme.Name != "nord" {
		t.Errorf("Theme.Name = %q, want nord from the global file", cfg.Theme.Name)
	}
	if cfg.Spinner.Style != "line" {
		t.Errorf("Spinner.Style = %q, want line from the local file", cfg.Spinner.Style)
	}
	if cfg.Unicode != "always" {
		t.Errorf("Unicode = %q, want always from the environment", cfg.Unicode)
	}

	t.Setenv("CLIPROMPT_UNICODE", "bogus")
	if _, err := Load(dir); err == nil {
		t.Error("Load() with invalid CLIPROMPT_UNICODE = nil error")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("CLIPROMPT_CONFIG", path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != path {
		t.Errorf("Init() path = %q, want %q", got, path)
	}

	// The template must parse back to the defaults.
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile(template) error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("template = %+v, want defaults %+v", cfg, Default())
	}

	if _, err := Init(false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Init() error = %v, want already exists", err)
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var back Config
	if _, err := toml.Decode(buf.String(), &back); err != nil {
		t.Fatalf("decode encoded config: %v\n%s", err, buf.String())
	}
	if back != Default() {
		t.Errorf("decoded = %+v, want %+v", back, Default())
	}
	if !strings.Contains(buf.String(), `interval = "500ms"`) {
		t.Errorf("encoded config %q should write durations as strings", buf.String())
	}
}
