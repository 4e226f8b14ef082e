package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/retrograde/internal/config"
	"github.com/rshade/retrograde/internal/logging"
	"github.com/rshade/retrograde/internal/tui"
)

// setupLogging configures logging from the global config and the --debug flag,
// then stores the logger and a trace ID on the command context.
func setupLogging(cmd *cobra.Command, debug bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	logCfg := loggingCfg.ToLoggingConfig()
	// The full-screen program owns the terminal; stderr output would tear it.
	if logCfg.Output == logging.OutputStderr && willRunInteractive(cmd) {
		logCfg.Output = logging.OutputDiscard
	}

	// Ensure log directory exists after all overrides have been applied.
	if logCfg.Output == logging.OutputFile {
		if err := config.EnsureLogDir(); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	result := logging.NewLoggerWithPath(logCfg)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.With().Str("trace_id", traceID).Logger().WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// willRunInteractive reports whether cmd is the status command about to open
// the full-screen program.
func willRunInteractive(cmd *cobra.Command) bool {
	if cmd != cmd.Root() {
		return false
	}
	mode, jsonOut := resolveOutput(config.GetGlobalConfig().Output.DefaultFormat)
	return !jsonOut && mode == tui.OutputModeInteractive
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
