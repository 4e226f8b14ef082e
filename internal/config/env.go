package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverrides mirrors the settings that may be overridden from the environment.
// Empty values and nil pointers leave the loaded configuration untouched.
type envOverrides struct {
	Endpoint  string         `env:"RETROGRADE_ENDPOINT"`
	Timeout   *time.Duration `env:"RETROGRADE_TIMEOUT"`
	Locale    string         `env:"RETROGRADE_LOCALE"`
	Output    string         `env:"RETROGRADE_OUTPUT"`
	LogLevel  string         `env:"RETROGRADE_LOG_LEVEL"`
	LogFormat string         `env:"RETROGRADE_LOG_FORMAT"`
	LogFile   string         `env:"RETROGRADE_LOG_FILE"`
}

// ApplyEnv overlays RETROGRADE_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Timeout != nil {
		cfg.Status.Timeout = *o.Timeout
	}

	setIfNotEmpty(&cfg.Status.Endpoint, o.Endpoint)
	setIfNotEmpty(&cfg.Status.Locale, o.Locale)
	setIfNotEmpty(&cfg.Output.DefaultFormat, o.Output)
	setIfNotEmpty(&cfg.Logging.Level, o.LogLevel)
	setIfNotEmpty(&cfg.Logging.Format, o.LogFormat)
	setIfNotEmpty(&cfg.Logging.File, o.LogFile)
	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
