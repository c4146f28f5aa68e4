// Package config handles loading and validation of the urlseg configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/urlseg/internal/logger"
	"github.com/sgaunet/urlseg/pkg/render"
	"github.com/sgaunet/urlseg/pkg/urlparser"
	"gopkg.in/yaml.v3"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidMode is returned when mode is neither strict nor partial.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidFormat is returned when format is not a known output format.
	ErrInvalidFormat = errors.New("invalid output format")

	// ErrInvalidLogLevel is returned when log_level is not a known level.
	ErrInvalidLogLevel = errors.New("invalid log level")
)

// Defaults applied when the configuration file omits a field or does not exist.
const (
	DefaultMode     = string(urlparser.ModeStrict)
	DefaultFormat   = string(render.FormatText)
	DefaultLogLevel = "info"
)

// Config represents the complete configuration for urlseg.
type Config struct {
	Mode     string `yaml:"mode"`
	Format   string `yaml:"format"`
	Redact   *bool  `yaml:"redact"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	redact := true
	return &Config{
		Mode:     DefaultMode,
		Format:   DefaultFormat,
		Redact:   &redact,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath returns ~/.config/urlseg/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "urlseg", "config.yml"), nil
}

// Load reads the configuration file at path.
//
// An empty path means [DefaultPath]; a missing default file yields [Default].
// A missing explicit file is an error wrapping [ErrConfigNotFound].
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	// #nosec G304 - Reading a user-selected config file is intentional
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	return Parse(data)
}

// Parse decodes YAML configuration data, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()
	c.Mode = strings.TrimSpace(c.Mode)
	c.Format = strings.TrimSpace(c.Format)
	c.LogLevel = strings.TrimSpace(c.LogLevel)

	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.Redact == nil {
		c.Redact = defaults.Redact
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if _, err := urlparser.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}

	if _, err := render.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// RedactEnabled reports whether passwords are masked in output.
func (c *Config) RedactEnabled() bool {
	return c.Redact == nil || *c.Redact
}

// ParsingMode returns the validated parsing mode.
func (c *Config) ParsingMode() urlparser.Mode {
	mode, err := urlparser.ParseMode(c.Mode)
	if err != nil {
		return urlparser.ModeStrict
	}
	return mode
}

// OutputFormat returns the validated output format.
func (c *Config) OutputFormat() render.Format {
	format, err := render.ParseFormat(c.Format)
	if err != nil {
		return render.FormatText
	}
	return format
}
