package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/store"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantName string
	}{
		{"nil", nil, ExitSuccess, "ERROR"},
		{"plain", errors.New("disk on fire"), ExitError, "ERROR"},
		{"not found", store.NotFound("board", "b-1"), ExitNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("step 3: %w", store.NotFound("list", "l-1")), ExitNotFound, "NOT_FOUND"},
		{"invalid target", store.InvalidTarget("index must not be negative"), ExitInvalidTarget, "INVALID_TARGET"},
		{"invalid input", store.InvalidInput("title cannot be empty"), ExitInvalidInput, "INVALID_INPUT"},
		{"usage", Usage(errors.New("accepts 1 arg(s)")), ExitUsage, "USAGE_ERROR"},
		{"usage wrapping store error", Usage(store.NotFound("card", "x")), ExitUsage, "USAGE_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", got, tt.wantCode)
			}
			if tt.err == nil {
				return
			}
			if got := ErrorCode(tt.err); got != tt.wantName {
				t.Errorf("ErrorCode() = %s, want %s", got, tt.wantName)
			}
		})
	}
}

func TestUsageArgs(t *testing.T) {
	validate := UsageArgs(cobra.ExactArgs(1))

	if err := validate(&cobra.Command{}, []string{"one"}); err != nil {
		t.Errorf("Expected no error for one arg, got %v", err)
	}
	err := validate(&cobra.Command{}, nil)
	if err == nil {
		t.Fatal("Expected an error for missing arg")
	}
	if ExitCode(err) != ExitUsage {
		t.Errorf("Expected usage exit code, got %d", ExitCode(err))
	}
	if Usage(nil) != nil {
		t.Error("Usage(nil) should be nil")
	}
}
