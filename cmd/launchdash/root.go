package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"launchdash/internal/config"
)

// NewRootCmd creates the root command for launchdash.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "launchdash",
		Short: "Launch records dashboard",
		Long: `launchdash loads historical launch records from a CSV file and serves a
dashboard with a success pie chart per site and a payload mass vs outcome
scatter chart.

Settings come from environment variables (DATA_FILE, SERVER_ADDR, LOG_LEVEL, ...).
The --data and --config flags override DATA_FILE and CONFIG_FILE.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().String("data", "", "Launch records CSV (overrides DATA_FILE)")
	cmd.PersistentFlags().String("config", "", "Dashboard YAML config (overrides CONFIG_FILE)")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the global flag overrides.
// cmd.Flag also searches persistent flags, which are not merged into
// cmd.Flags() until the command executes.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Load()

	if f := cmd.Flag("data"); f != nil && f.Value.String() != "" {
		cfg.DataFile = f.Value.String()
	}
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		cfg.ConfigFile = f.Value.String()
	}

	return cfg, nil
}
