package main

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/cli"
	"github.com/thenoetrevino/boardstore/internal/cli/board"
	"github.com/thenoetrevino/boardstore/internal/cli/replay"
)

func newRootCmd() *cobra.Command {
	commands := board.Commands()
	commands = append(commands, replay.ReplayCmd(), replay.OpsCmd())
	return cli.NewRootCmd(commands...)
}
