package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/boardstore/internal/config"
)

// NewRootCmd builds the boardctl root command. Its pre-run loads the config
// and stores a CLI in the command context for subcommands to pick up.
func NewRootCmd(subcommands ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boardctl",
		Short: "boardctl - drive the in-memory board store",
		Long: `boardctl seeds the in-memory board store from fixtures, replays
operation scripts against it and renders the result. Nothing is kept
between runs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	// Agent-friendly flags
	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().Bool("quiet", false, "Minimal output (IDs only)")
	cmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/boardstore/config.yaml)")
	cmd.PersistentFlags().String("seed", "", "YAML fixture to load instead of the configured seed")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log store mutations at debug level")

	cmd.AddCommand(subcommands...)
	return cmd
}

func setup(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	cliInstance, err := NewCLI(cfg)
	if err != nil {
		return err
	}
	cmd.SetContext(WithCLI(cmd.Context(), cliInstance))
	return nil
}

// Formatter builds the output formatter from the global flags
func Formatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// SeedPath returns the --seed flag value
func SeedPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("seed")
	return path
}
