package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: unreadable files, integrity failures, or any error that
	// doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown flags.
	ExitUsage = 2

	// ExitNotFound indicates a referenced entity does not exist.
	ExitNotFound = 3

	// ExitInvalidTarget indicates a move or relation pointed somewhere it cannot go.
	// Use for: negative indexes, stale drag sources, tags from another board.
	ExitInvalidTarget = 4

	// ExitInvalidInput indicates a validation error.
	// Use for: empty titles, overlong text, malformed colors or emails.
	ExitInvalidInput = 5
)

// UsageError marks errors caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usage wraps err as a usage error
func Usage(err error) error {
	if err == nil {
		return nil
	}
	return &UsageError{Err: err}
}

// UsageArgs wraps a cobra positional args validator so its failures exit with ExitUsage
func UsageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return Usage(validate(cmd, args))
	}
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	code, ok := store.CodeOf(err)
	if !ok {
		return ExitError
	}
	switch code {
	case store.CodeNotFound:
		return ExitNotFound
	case store.CodeInvalidTarget:
		return ExitInvalidTarget
	case store.CodeInvalidInput:
		return ExitInvalidInput
	default:
		return ExitError
	}
}

// ErrorCode returns the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitInvalidTarget:
		return "INVALID_TARGET"
	case ExitInvalidInput:
		return "INVALID_INPUT"
	default:
		return "ERROR"
	}
}
