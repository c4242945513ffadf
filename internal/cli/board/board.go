// Package board holds the boardctl commands that seed the store and print it
package board

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/cli/styles"
)

// Commands returns every board command
func Commands() []*cobra.Command {
	return []*cobra.Command{DemoCmd(), TreeCmd(), CheckCmd(), CardCmd()}
}

// treeResult is the JSON payload of demo and tree
type treeResult struct {
	Sequence   int64               `json:"sequence"`
	Workspaces []cli.WorkspaceView `json:"workspaces"`
}

// GetID prints the snapshot sequence in quiet mode
func (r treeResult) GetID() string { return fmt.Sprint(r.Sequence) }

func printTree(cmd *cobra.Command, c *cli.CLI) error {
	formatter := cli.Formatter(cmd)
	snap := c.App.Snapshot()
	result := treeResult{
		Sequence:   snap.Sequence(),
		Workspaces: cli.BuildView(snap, c.Refs),
	}
	st := styles.New(c.Config.Theme)
	return formatter.Success(result, func(w io.Writer) error {
		_, err := io.WriteString(w, cli.RenderTree(result.Workspaces, st))
		return err
	})
}

// DemoCmd returns the demo subcommand
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Seed the demo data and print the board tree",
		Long: `Seed the store with the built-in demo data set (three users, two
workspaces, three boards) and print the resulting tree. --seed loads a
fixture file instead.`,
		Args: cli.UsageArgs(cobra.NoArgs),
		RunE: runDemo,
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
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

	if path := cli.SeedPath(cmd); path != "" {
		err = cliInstance.Seed(ctx, path)
	} else {
		err = cliInstance.SeedDemo(ctx)
	}
	if err != nil {
		return formatter.Fail(err)
	}
	return printTree(cmd, cliInstance)
}

// TreeCmd returns the tree subcommand
func TreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the board tree of the configured seed",
		Args:  cli.UsageArgs(cobra.NoArgs),
		RunE:  runTree,
	}
}

func runTree(cmd *cobra.Command, args []string) error {
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
	return printTree(cmd, cliInstance)
}
