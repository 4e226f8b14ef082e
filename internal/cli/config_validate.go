package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/retrograde/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file at ~/.retrograde/config.yaml together
with RETROGRADE_* environment overrides.

This includes:
- YAML syntax
- Endpoint URL scheme (http or https)
- Non-negative request timeout
- Known output format`,
		Example: `  # Validate current configuration
  retrograde config validate

  # Validate and show detailed information
  retrograde config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate reloads the configuration from disk and the environment
// and reports whether it is valid.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, path, cfg)
	}
	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, path string, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Config file: %s\n", path)
	cmd.Printf("  Endpoint: %s\n", cfg.Status.Endpoint)
	cmd.Printf("  Timeout: %s\n", cfg.Status.Timeout)
	cmd.Printf("  Locale: %s\n", cfg.Status.Locale)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Decorations: %t\n", cfg.Output.Decorations)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
}
