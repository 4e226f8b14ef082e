package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how results are presented.
type OutputMode int

const (
	// OutputModePlain writes unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes a one-shot lipgloss card.
	OutputModeStyled
	// OutputModeInteractive runs the full-screen Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

const defaultTerminalWidth = 80

// DetectOutputMode inspects the terminal and environment.
//   - plain or noColor, NO_COLOR and TERM=dumb force plain output
//   - forceColor yields styled output even when stdout is not a terminal
//   - interactive needs both stdin and stdout to be terminals outside CI
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(
		forceColor, noColor, plain,
		os.Getenv,
		term.IsTerminal(int(os.Stdin.Fd())),
		term.IsTerminal(int(os.Stdout.Fd())),
	)
}

func detectOutputMode(
	forceColor, noColor, plain bool,
	getenv func(string) string,
	stdinTTY, stdoutTTY bool,
) OutputMode {
	if plain || noColor || getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !stdoutTTY {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if stdinTTY && getenv("CI") == "" {
		return OutputModeInteractive
	}
	return OutputModeStyled
}

// TerminalWidth returns the width of stdout, or 80 when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
