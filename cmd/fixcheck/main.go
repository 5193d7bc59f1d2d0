package main

import (
	"fmt"
	"os"

	"fixcheck/internal/cli"
	"fixcheck/internal/cli/commands"
	"fixcheck/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "fixcheck",
		Short:         "Manual test case runner for front-end regressions",
		Long:          `Load manual test fixtures and walk through them in the browser or the terminal. Cases whose fix is not part of the target version are marked complete so only relevant ones need checking.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults, then apply .env and environment
	cfg := config.New()
	if err := cfg.LoadEnv(config.DefaultEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
