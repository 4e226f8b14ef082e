// Package config loads retrograde's settings from ~/.retrograde/config.yaml
// and RETROGRADE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats accepted by OutputConfig.DefaultFormat and --output.
const (
	FormatAuto   = "auto"
	FormatStyled = "styled"
	FormatPlain  = "plain"
	FormatJSON   = "json"
)

// Defaults applied by New.
const (
	DefaultEndpoint = "https://mercuryretrogradeapi.com"
	DefaultTimeout  = 10 * time.Second
	DefaultLocale   = "en"
	DefaultLogLevel = "warn"

	configFileName = "config.yaml"
)

// Config is the full retrograde configuration.
type Config struct {
	Status  StatusConfig  `yaml:"status"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// StatusConfig controls the outbound status request.
type StatusConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"` // 0 disables the timeout
	Locale   string        `yaml:"locale"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Decorations   bool   `yaml:"decorations"`
}

// LoggingConfig controls log level, format and destination.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Status: StatusConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout,
			Locale:   DefaultLocale,
		},
		Output: OutputConfig{
			DefaultFormat: FormatAuto,
			Decorations:   true,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path (if it exists),
// and environment overrides, in that order.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if err := MergeYAML(cfg, path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDefault loads the config file from the standard location.
func LoadDefault() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Status.Timeout < 0 {
		return fmt.Errorf("status.timeout must be >= 0, got %s", c.Status.Timeout)
	}

	u, err := url.Parse(c.Status.Endpoint)
	if err != nil {
		return fmt.Errorf("status.endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("status.endpoint must be an http(s) URL, got %q", c.Status.Endpoint)
	}

	switch c.Output.DefaultFormat {
	case FormatAuto, FormatStyled, FormatPlain, FormatJSON:
	default:
		return fmt.Errorf("output.default_format %q is not one of auto, styled, plain, json", c.Output.DefaultFormat)
	}
	return nil
}

// Save writes c as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
