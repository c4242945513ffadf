package board

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/cli/styles"
	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/script"
)

// checkResult is the JSON payload of check
type checkResult struct {
	Sequence int64                   `json:"sequence"`
	Counts   map[string]int          `json:"counts"`
	Steps    int                     `json:"steps,omitempty"`
	Events   *events.MetricsSnapshot `json:"events,omitempty"`
}

// CheckCmd returns the check subcommand
func CheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify referential integrity of the seeded store",
		Long: `Seed the store, optionally replay a script, then verify every
structural invariant: parent links agree with child collections, ordered
collections hold no duplicates, and every relation points at a live record.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runCheck,
	}
	cmd.Flags().String("script", "", "Script to replay before checking")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.Formatter(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	if err := cliInstance.Seed(ctx, cli.SeedPath(cmd)); err != nil {
		return formatter.Fail(err)
	}

	result := checkResult{}
	if path, _ := cmd.Flags().GetString("script"); path != "" {
		s, err := script.Load(path)
		if err != nil {
			return formatter.Fail(err)
		}
		if _, err := script.Run(ctx, cliInstance.App, cliInstance.Refs, s.Steps); err != nil {
			return formatter.Fail(err)
		}
		result.Steps = len(s.Steps)
	}

	snap := cliInstance.App.Snapshot()
	if err := snap.CheckIntegrity(); err != nil {
		return formatter.Fail(fmt.Errorf("integrity check failed: %w", err))
	}

	state := snap.State()
	result.Sequence = snap.Sequence()
	result.Counts = map[string]int{
		"users":      state.Users.Len(),
		"workspaces": state.Workspaces.Len(),
		"boards":     state.Boards.Len(),
		"lists":      state.Lists.Len(),
		"cards":      state.Cards.Len(),
		"tags":       state.Tags.Len(),
		"todos":      state.Todos.Len(),
		"comments":   state.Comments.Len(),
	}

	if m, ok := cliInstance.App.EventMetrics(); ok {
		result.Events = &m
	}

	st := styles.New(cliInstance.Config.Theme)
	return formatter.Success(result, func(w io.Writer) error {
		fmt.Fprintf(w, "%s integrity ok at sequence %d\n", st.Success.Render("✓"), result.Sequence)
		for _, kind := range []string{"users", "workspaces", "boards", "lists", "cards", "tags", "todos", "comments"} {
			fmt.Fprintf(w, "  %s %d\n", st.Label.Render(fmt.Sprintf("%-11s", kind+":")), result.Counts[kind])
		}
		if result.Events != nil {
			fmt.Fprintf(w, "  %s %d sent, %d dropped\n", st.Label.Render(fmt.Sprintf("%-11s", "events:")),
				result.Events.EventsSent, result.Events.EventsDropped)
		}
		return nil
	})
}
