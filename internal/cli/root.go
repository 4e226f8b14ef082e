package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/retrograde/internal/config"
	"github.com/rshade/retrograde/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// rootFlags holds the persistent flags that override configuration.
type rootFlags struct {
	endpoint      string
	timeout       string
	locale        string
	output        string
	noDecorations bool
	debug         bool
}

// NewRootCmd creates the root Cobra command for the retrograde CLI.
// Running it without a subcommand asks whether Mercury is in retrograde.
func NewRootCmd(ver string) *cobra.Command {
	var (
		flags     rootFlags
		date      string
		logResult *logging.LogPathResult
	)

	cmd := &cobra.Command{
		Use:           "retrograde",
		Short:         "Is Mercury in retrograde?",
		Long:          "retrograde asks a public ephemeris API whether Mercury is in retrograde today.",
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err = applyFlagOverrides(cmd, cfg, flags); err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, flags.debug)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, date)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.endpoint, "endpoint", "", "status API endpoint (overrides config file and env var)")
	pf.StringVar(&flags.timeout, "timeout", "", "request timeout, e.g. 10s (0 disables)")
	pf.StringVar(&flags.locale, "locale", "", "locale for date labels: en, de, fr, es")
	pf.StringVarP(&flags.output, "output", "o", "", "output format: auto, styled, plain, json")
	pf.BoolVar(&flags.noDecorations, "no-decorations", false, "hide the starfield, ticker, banner and footer")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")

	cmd.Flags().StringVar(&date, "date", "", "ask about this date (YYYY-MM-DD) instead of today")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

// loadConfig loads the layered configuration for cmd. Commands in the config
// group fall back to defaults on a load error so that an invalid file can
// still be validated or replaced.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadDefault()
	if err == nil {
		return cfg, nil
	}
	if !inConfigGroup(cmd) {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	cmd.PrintErrf("Warning: using default configuration: %v\n", err)
	return config.New(), nil
}

func inConfigGroup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == configCmdName {
			return true
		}
	}
	return false
}

// applyFlagOverrides copies explicitly set flags onto cfg. Flags win over the
// environment and the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags rootFlags) error {
	changed := cmd.Flags().Changed
	if changed("endpoint") {
		cfg.Status.Endpoint = flags.endpoint
	}
	if changed("timeout") {
		d, err := parseTimeout(flags.timeout)
		if err != nil {
			return err
		}
		cfg.Status.Timeout = d
	}
	if changed("locale") {
		cfg.Status.Locale = flags.locale
	}
	if changed("output") {
		cfg.Output.DefaultFormat = flags.output
	}
	if flags.noDecorations {
		cfg.Output.Decorations = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	return nil
}

const rootCmdExample = `  # Ask about today
  retrograde

  # Ask about a specific date, as JSON
  retrograde --date 2024-04-05 --output json

  # Plain text for scripts; exits 2 when the status is unavailable
  retrograde --output plain

  # Write a default configuration file
  retrograde config init`

const configCmdName = "config"

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: configCmdName, Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
