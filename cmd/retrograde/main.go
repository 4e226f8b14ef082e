package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/retrograde/internal/cli"
	"github.com/rshade/retrograde/pkg/version"
)

// exitCodeInterrupted follows the shell convention of 128 + SIGINT.
const exitCodeInterrupted = 130

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	err := run()
	if err == nil {
		return
	}
	var exitErr *cli.StatusExitError
	if !errors.As(err, &exitErr) && !errors.Is(err, cli.ErrInterrupted) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(extractExitCode(err))
}

// extractExitCode maps err to a process exit code: the code carried by a
// StatusExitError, 130 for an interrupt, 1 for anything else.
func extractExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.StatusExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode
	}
	if errors.Is(err, cli.ErrInterrupted) {
		return exitCodeInterrupted
	}
	return 1
}
