// Package replay holds the boardctl replay command
package replay

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/cli/styles"
	"github.com/thenoetrevino/boardstore/internal/script"
)

// replayResult is the JSON payload of replay
type replayResult struct {
	Script     string              `json:"script"`
	Sequence   int64               `json:"sequence"`
	Steps      []script.Result     `json:"steps"`
	Workspaces []cli.WorkspaceView `json:"workspaces,omitempty"`
}

// GetID prints the final sequence in quiet mode
func (r replayResult) GetID() string { return fmt.Sprint(r.Sequence) }

// ReplayCmd returns the replay subcommand
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay an operation script against a seeded store",
		Long: `Seed the store, then run every step of the script in order. The
first failing step stops the replay and sets the exit code:
3 for a missing entity, 4 for an invalid move target, 5 for invalid input.

The fixture comes from --seed, then the script's own seed entry (relative
to the script), then the config file.`,
		Args: cli.UsageArgs(cobra.ExactArgs(1)),
		RunE: runReplay,
	}
	cmd.Flags().Bool("tree", false, "Print the board tree after the replay")
	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
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

	path := args[0]
	s, err := script.Load(path)
	if err != nil {
		return formatter.Fail(err)
	}

	seedPath := cli.SeedPath(cmd)
	if seedPath == "" && s.Seed != "" {
		seedPath = s.Seed
		if !filepath.IsAbs(seedPath) {
			seedPath = filepath.Join(filepath.Dir(path), seedPath)
		}
	}
	if err := cliInstance.Seed(ctx, seedPath); err != nil {
		return formatter.Fail(err)
	}

	results, runErr := script.Run(ctx, cliInstance.App, cliInstance.Refs, s.Steps)

	showTree, _ := cmd.Flags().GetBool("tree")
	snap := cliInstance.App.Snapshot()
	result := replayResult{
		Script:   path,
		Sequence: snap.Sequence(),
		Steps:    results,
	}
	if showTree {
		result.Workspaces = cli.BuildView(snap, cliInstance.Refs)
	}
	if runErr != nil {
		slog.Debug("replay stopped", "script", path, "completed", len(results), "error", runErr)
		return formatter.Fail(runErr)
	}

	st := styles.New(cliInstance.Config.Theme)
	return formatter.Success(result, func(w io.Writer) error {
		name := s.Name
		if name == "" {
			name = filepath.Base(path)
		}
		fmt.Fprintf(w, "%s %s: %d steps, sequence %d\n", st.Success.Render("✓"), name, len(results), result.Sequence)
		for _, r := range results {
			line := fmt.Sprintf("  %3d %s", r.Step, st.Label.Render(r.Op))
			if r.Detail != "" {
				line += " " + st.Subtle.Render(r.Detail)
			}
			fmt.Fprintln(w, line)
		}
		if showTree {
			fmt.Fprintln(w)
			_, err := io.WriteString(w, cli.RenderTree(result.Workspaces, st))
			return err
		}
		return nil
	})
}

// OpsCmd returns the ops subcommand
func OpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the step ops a replay script may use",
		Args:  cli.UsageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.Formatter(cmd)
			// Listing ops needs no store, but the root pre-run built one
			if cliInstance, err := cli.GetCLIFromContext(cmd.Context()); err == nil {
				defer func() {
					if err := cliInstance.Close(); err != nil {
						slog.Error("failed to close CLI", "error", err)
					}
				}()
			}
			ops := script.Ops()
			return formatter.Success(ops, func(w io.Writer) error {
				_, err := fmt.Fprintln(w, strings.Join(ops, "\n"))
				return err
			})
		},
	}
}
