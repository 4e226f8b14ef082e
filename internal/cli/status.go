package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/retrograde/internal/config"
	"github.com/rshade/retrograde/internal/logging"
	"github.com/rshade/retrograde/internal/retrograde"
	"github.com/rshade/retrograde/internal/tui"
	"github.com/rshade/retrograde/pkg/version"
)

// ExitCodeStatusUnavailable is returned when the status could not be fetched
// in a non-interactive mode.
const ExitCodeStatusUnavailable = 2

// maxCardWidth caps the styled card on wide terminals.
const maxCardWidth = 100

// ErrInterrupted is returned when the user interrupts a pending request.
var ErrInterrupted = errors.New("interrupted")

// StatusExitError carries the process exit code for a status that could not
// be resolved.
type StatusExitError struct {
	ExitCode int
	Reason   string
}

func (e *StatusExitError) Error() string {
	return e.Reason
}

// statusReport is the JSON document written by --output json.
type statusReport struct {
	Date string `json:"date"`
	retrograde.Snapshot
}

// runStatus fetches today's status and renders it in the configured mode.
func runStatus(cmd *cobra.Command, date string) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()
	log := logging.FromContext(ctx)

	controller, err := newStatusController(cfg, date)
	if err != nil {
		return err
	}
	locale := retrograde.ParseLocale(cfg.Status.Locale)

	mode, jsonOut := resolveOutput(cfg.Output.DefaultFormat)
	log.Debug().
		Str("endpoint", cfg.Status.Endpoint).
		Str("mode", mode.String()).
		Bool("json", jsonOut).
		Msg("resolving retrograde status")

	if !jsonOut && mode == tui.OutputModeInteractive {
		return runInteractiveStatus(ctx, controller, tui.StatusModelOptions{
			Locale:      locale,
			Decorations: cfg.Output.Decorations,
		})
	}

	state, err := awaitStatus(ctx, controller)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case jsonOut:
		err = renderJSON(out, controller.RequestDate(), state)
	case mode == tui.OutputModeStyled:
		p := retrograde.DerivePresentation(state, locale)
		_, err = fmt.Fprintln(out, tui.RenderCard(p, min(tui.TerminalWidth(), maxCardWidth)))
	default:
		_, err = fmt.Fprint(out, tui.RenderPlain(retrograde.DerivePresentation(state, locale)))
	}
	if err != nil {
		return fmt.Errorf("writing status: %w", err)
	}

	if failed, ok := state.(retrograde.Failed); ok {
		return &StatusExitError{
			ExitCode: ExitCodeStatusUnavailable,
			Reason:   "status unavailable: " + failed.Message,
		}
	}
	return nil
}

// newStatusController builds the HTTP fetcher and controller from cfg.
// A non-empty date pins the request date.
func newStatusController(cfg *config.Config, date string) (*retrograde.Controller, error) {
	fetcher := retrograde.NewHTTPFetcher(cfg.Status.Endpoint, cfg.Status.Timeout)
	fetcher.UserAgent = version.UserAgent()

	var opts []retrograde.Option
	if date != "" {
		t, err := time.ParseInLocation(retrograde.RequestDateLayout, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", date, err)
		}
		opts = append(opts, retrograde.WithDateProvider(retrograde.FixedDate(t)))
	}
	return retrograde.NewController(fetcher, opts...), nil
}

// awaitStatus starts controller and blocks until it settles. An interrupt
// stops the controller and yields ErrInterrupted.
func awaitStatus(ctx context.Context, controller *retrograde.Controller) (retrograde.State, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := controller.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting status request: %w", err)
	}

	select {
	case <-controller.Done():
		return controller.State(), nil
	case <-ctx.Done():
		controller.Stop()
		return nil, ErrInterrupted
	}
}

// runInteractiveStatus runs the full-screen program and tears the controller
// down when it exits.
func runInteractiveStatus(
	ctx context.Context,
	controller *retrograde.Controller,
	opts tui.StatusModelOptions,
) error {
	model := tui.NewStatusModel(ctx, controller, opts)
	defer model.Teardown()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Decorations {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(model, programOpts...).Run()
	if err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	if sm, ok := final.(tui.StatusModel); ok && sm.StartErr() != nil {
		return fmt.Errorf("starting status request: %w", sm.StartErr())
	}
	return nil
}

func renderJSON(w io.Writer, date string, state retrograde.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(statusReport{Date: date, Snapshot: retrograde.SnapshotOf(state)})
}

// resolveOutput maps a configured format to a terminal mode. jsonOut is true
// for the json format, which bypasses every terminal renderer.
func resolveOutput(format string) (tui.OutputMode, bool) {
	switch format {
	case config.FormatJSON:
		return tui.OutputModePlain, true
	case config.FormatPlain:
		return tui.OutputModePlain, false
	case config.FormatStyled:
		return tui.OutputModeStyled, false
	default:
		return tui.DetectOutputMode(false, false, false), false
	}
}

// parseTimeout parses a --timeout value; "0" disables the timeout.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid --timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("--timeout must be >= 0, got %s", d)
	}
	return d, nil
}
