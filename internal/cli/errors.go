package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes returned by the wayfarer binary.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// UsageError is a bad argument the user can fix by changing the command line.
type UsageError struct {
	Msg  string
	Hint string
}

func (e *UsageError) Error() string {
	if e.Hint == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s\nhint: %s", e.Msg, e.Hint)
}

func usageErrorf(hint, format string, args ...any) error {
	return &UsageError{Msg: fmt.Sprintf(format, args...), Hint: hint}
}

// ExitCode maps an error from Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

// usageArgs turns argument-count failures into usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageErrorf("see `"+cmd.CommandPath()+" --help`", "%v", err)
		}
		return nil
	}
}

func flagError(cmd *cobra.Command, err error) error {
	return usageErrorf("see `"+cmd.CommandPath()+" --help`", "%v", err)
}
