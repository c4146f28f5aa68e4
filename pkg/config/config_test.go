package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgaunet/urlseg/pkg/config"
	"github.com/sgaunet/urlseg/pkg/render"
	"github.com/sgaunet/urlseg/pkg/urlparser"
)

// YAML fixtures for Load() tests.
const (
	validConfigYAML = `
mode: partial
format: yaml
redact: false
log_level: debug
`

	validConfigWithWhitespace = `
mode: "  partial  "
format: "  json  "
log_level: "  warn  "
`

	validConfigWithComments = `
# urlseg configuration
mode: strict   # complete URLs only
format: text
`

	emptyConfigYAML = ``

	malformedYAMLIndentation = `
mode: strict
  format: text
`

	malformedYAMLTabs = `
mode:
	strict
`

	invalidModeYAML = `
mode: lenient
`

	invalidFormatYAML = `
format: xml
`

	invalidLogLevelYAML = `
log_level: verbose
`
)

// setupTestConfig creates a temporary home directory with a config file.
// It uses t.TempDir() for automatic cleanup and t.Setenv() to redirect $HOME.
func setupTestConfig(t *testing.T, configContent string) string {
	t.Helper()

	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".config", "urlseg")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	return configPath
}

func boolPtr(b bool) *bool {
	return &b
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name           string
		configYAML     string
		expectedConfig config.Config
	}{
		{
			name:       "valid standard config",
			configYAML: validConfigYAML,
			expectedConfig: config.Config{
				Mode: "partial", Format: "yaml", Redact: boolPtr(false), LogLevel: "debug",
			},
		},
		{
			name:       "config with whitespace (auto-trimmed)",
			configYAML: validConfigWithWhitespace,
			expectedConfig: config.Config{
				Mode: "partial", Format: "json", Redact: boolPtr(true), LogLevel: "warn",
			},
		},
		{
			name:       "config with comments",
			configYAML: validConfigWithComments,
			expectedConfig: config.Config{
				Mode: "strict", Format: "text", Redact: boolPtr(true), LogLevel: "info",
			},
		},
		{
			name:       "empty config uses defaults",
			configYAML: emptyConfigYAML,
			expectedConfig: config.Config{
				Mode: "strict", Format: "text", Redact: boolPtr(true), LogLevel: "info",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.configYAML)

			cfg, err := config.Load("")
			if err != nil {
				t.Fatalf("Expected Load() to succeed, got error: %v", err)
			}

			if cfg.Mode != tt.expectedConfig.Mode {
				t.Errorf("Mode: expected '%s', got '%s'", tt.expectedConfig.Mode, cfg.Mode)
			}
			if cfg.Format != tt.expectedConfig.Format {
				t.Errorf("Format: expected '%s', got '%s'", tt.expectedConfig.Format, cfg.Format)
			}
			if cfg.LogLevel != tt.expectedConfig.LogLevel {
				t.Errorf("LogLevel: expected '%s', got '%s'", tt.expectedConfig.LogLevel, cfg.LogLevel)
			}
			if cfg.RedactEnabled() != *tt.expectedConfig.Redact {
				t.Errorf("Redact: expected %v, got %v", *tt.expectedConfig.Redact, cfg.RedactEnabled())
			}
		})
	}
}

func TestLoadDefaultFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Expected defaults when the default file is missing, got error: %v", err)
	}

	if cfg.ParsingMode() != urlparser.ModeStrict {
		t.Errorf("ParsingMode: expected strict, got %s", cfg.ParsingMode())
	}
	if cfg.OutputFormat() != render.FormatText {
		t.Errorf("OutputFormat: expected text, got %s", cfg.OutputFormat())
	}
	if !cfg.RedactEnabled() {
		t.Error("Expected redaction to be enabled by default")
	}
}

func TestLoadExplicitFileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yml")

	_, err := config.Load(missing)
	if !errors.Is(err, config.ErrConfigNotFound) {
		t.Fatalf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(path, []byte(validConfigYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Expected Load() to succeed, got error: %v", err)
	}
	if cfg.ParsingMode() != urlparser.ModePartial {
		t.Errorf("ParsingMode: expected partial, got %s", cfg.ParsingMode())
	}
	if cfg.OutputFormat() != render.FormatYAML {
		t.Errorf("OutputFormat: expected yaml, got %s", cfg.OutputFormat())
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	for name, content := range map[string]string{
		"bad indentation": malformedYAMLIndentation,
		"tabs":            malformedYAMLTabs,
	} {
		t.Run(name, func(t *testing.T) {
			setupTestConfig(t, content)

			_, err := config.Load("")
			if err == nil {
				t.Fatal("Expected an error for malformed YAML, got nil")
			}
		})
	}
}

func TestLoadValidationFailures(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantError error
	}{
		{"invalid mode", invalidModeYAML, config.ErrInvalidMode},
		{"invalid format", invalidFormatYAML, config.ErrInvalidFormat},
		{"invalid log level", invalidLogLevelYAML, config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.content)

			_, err := config.Load("")
			if !errors.Is(err, tt.wantError) {
				t.Errorf("Expected error %v, got %v", tt.wantError, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Config
		wantError error
	}{
		{"all valid", config.Config{Mode: "strict", Format: "text", LogLevel: "info"}, nil},
		{"partial json", config.Config{Mode: "partial", Format: "json", LogLevel: "error"}, nil},
		{"empty mode", config.Config{Mode: "", Format: "text", LogLevel: "info"}, config.ErrInvalidMode},
		{"bad format", config.Config{Mode: "strict", Format: "csv", LogLevel: "info"}, config.ErrInvalidFormat},
		{"bad level", config.Config{Mode: "strict", Format: "text", LogLevel: "trace"}, config.ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("Expected error %v, got %v", tt.wantError, err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default configuration is invalid: %v", err)
	}
	if !cfg.RedactEnabled() {
		t.Error("Expected redaction to be enabled by default")
	}
}
