package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// IDGetter is implemented by results that have a single id to print in quiet mode
type IDGetter interface {
	GetID() string
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out io.Writer // Defaults to os.Stdout
	Err io.Writer // Defaults to os.Stderr
}

func (f *OutputFormatter) stdout() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) stderr() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs a successful result. human renders the non-JSON form;
// when nil the data is printed with %+v. Quiet mode prints only the id of
// results that have one and falls through otherwise.
func (f *OutputFormatter) Success(data any, human func(io.Writer) error) error {
	if f.Quiet {
		if idGetter, ok := data.(IDGetter); ok {
			_, err := fmt.Fprintln(f.stdout(), idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != nil {
		return human(f.stdout())
	}
	_, err := fmt.Fprintf(f.stdout(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.stdout()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	if f.Quiet {
		return nil
	}

	fmt.Fprintf(f.stderr(), "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(f.stderr(), "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// reportedError marks an error the formatter has already printed
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Fail reports err and returns it marked as reported so RunE can hand it
// back to main for the exit code.
func (f *OutputFormatter) Fail(err error) error {
	if fmtErr := f.Error(ErrorCode(err), err.Error()); fmtErr != nil {
		return fmt.Errorf("%w (and failed to format error: %v)", err, fmtErr)
	}
	return &reportedError{err: err}
}

// Reported reports whether err was already printed by Fail
func Reported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
